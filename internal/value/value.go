// Package value implements the typed scalar values of the SQL engine.
//
// A Value is immutable. Every operation returns a new Value, or a shared
// interned one, and never modifies its receiver, so values can be read from
// any number of goroutines without synchronization.
//
// Binary arithmetic between different integral kinds widens both operands to
// the widest of the two kinds (see WidestKind) and produces a result of that
// kind regardless of operand order. Results which do not fit the result kind
// fail with sqlerrors.ErrArithmeticOverflow; nothing wraps silently.
package value

import (
	"fmt"
	"math"

	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
)

type Value interface {
	fmt.Stringer

	Kind() Kind

	// Add, Subtract and Multiply fail with sqlerrors.ErrUnsupportedCoercion when
	// other can't be promoted together with the receiver, and with
	// sqlerrors.ErrArithmeticOverflow when the result does not fit the result kind.
	Add(other Value) (Value, error)
	Subtract(other Value) (Value, error)
	Multiply(other Value) (Value, error)

	// Divide and Modulus truncate toward zero and fail with
	// sqlerrors.ErrDivisionByZero on a zero divisor.
	Divide(other Value) (Value, error)
	Modulus(other Value) (Value, error)

	Negate() (Value, error)

	// Signum returns -1, 0 or +1.
	Signum() int

	// CompareTo requires other to have the same kind as the receiver.
	// Callers go through Compare, which enforces it.
	CompareTo(other Value) int

	// Equal reports whether other has the same kind and payload.
	Equal(other Value) bool

	// SQL returns the text usable as a literal in generated SQL.
	SQL() string

	// HashInput returns bytes which are equal for equal values. scratch is
	// reused when large enough.
	HashInput(scratch []byte) []byte
}

// Compare returns -1, 0 or +1. Comparing values of different kinds is a
// programming error and panics.
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		panic(fmt.Errorf("internal error: can't compare %v with %v", a.Kind(), b.Kind()))
	}
	return a.CompareTo(b)
}

// Equal is a nil-safe Value equality.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// FromInt64 returns x as the narrowest integral kind able to hold it.
func FromInt64(x int64) Value {
	if x >= math.MinInt32 && x <= math.MaxInt32 {
		return GetInt(int32(x))
	}
	return GetLong(x)
}

// Promote widens a and b to their widest common kind.
func Promote(a, b Value) (Value, Value, error) {
	kind, ok := WidestKind(a.Kind(), b.Kind())
	if !ok {
		return nil, nil, sqlerrors.NewCoercionError(a.Kind(), b.Kind())
	}

	wa, err := Convert(a, kind)
	if err != nil {
		return nil, nil, err
	}
	wb, err := Convert(b, kind)
	if err != nil {
		return nil, nil, err
	}
	return wa, wb, nil
}

// Convert casts v to kind. Narrowing fails with sqlerrors.ErrArithmeticOverflow
// when the payload is out of range.
func Convert(v Value, kind Kind) (Value, error) {
	switch kind {
	case KindInt:
		switch v := v.(type) {
		case *IntValue:
			return v, nil
		case *LongValue:
			return intFromScratch(v.value)
		}
	case KindLong:
		switch v := v.(type) {
		case *IntValue:
			return GetLong(int64(v.value)), nil
		case *LongValue:
			return v, nil
		}
	}

	return nil, sqlerrors.NewCoercionError(v.Kind(), kind)
}

// Abs returns the absolute value of v, failing on the kind's minimum value.
func Abs(v Value) (Value, error) {
	if v.Signum() < 0 {
		return v.Negate()
	}
	return v, nil
}

// promoted applies op after widening both operands.
func promoted(a, b Value, op func(a, b Value) (Value, error)) (Value, error) {
	wa, wb, err := Promote(a, b)
	if err != nil {
		return nil, err
	}
	return op(wa, wb)
}
