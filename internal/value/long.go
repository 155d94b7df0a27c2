package value

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
)

// LongCacheSize bounds the interned LONG payloads to [0, LongCacheSize).
const LongCacheSize = 100

// LongValue is the LONG kind: a 64-bit signed integer.
type LongValue struct {
	value int64
}

var longCache = newInternCache(int64(LongCacheSize), newLongValue)

func newLongValue(i int64) *LongValue {
	return &LongValue{value: i}
}

// GetLong returns the shared instance for payloads in [0, LongCacheSize) and a
// fresh one otherwise.
func GetLong(i int64) *LongValue {
	if v, ok := longCache.get(i); ok {
		return v
	}
	return newLongValue(i)
}

func longOverflow(x *big.Int) error {
	return sqlerrors.NewOverflowError(KindLong, x)
}

func (v *LongValue) Kind() Kind {
	return KindLong
}

func (v *LongValue) Int64() int64 {
	return v.value
}

// operand widens other to a LONG payload.
func (v *LongValue) operand(other Value) (int64, error) {
	switch o := other.(type) {
	case *LongValue:
		return o.value, nil
	case *IntValue:
		return int64(o.value), nil
	}
	return 0, sqlerrors.NewCoercionError(v.Kind(), other.Kind())
}

func (v *LongValue) Add(other Value) (Value, error) {
	o, err := v.operand(other)
	if err != nil {
		return nil, err
	}

	if r, ok := addChecked(v.value, o, math.MinInt64, math.MaxInt64); ok {
		return GetLong(r), nil
	}
	return nil, longOverflow(new(big.Int).Add(big.NewInt(v.value), big.NewInt(o)))
}

func (v *LongValue) Subtract(other Value) (Value, error) {
	o, err := v.operand(other)
	if err != nil {
		return nil, err
	}

	if r, ok := subChecked(v.value, o, math.MinInt64, math.MaxInt64); ok {
		return GetLong(r), nil
	}
	return nil, longOverflow(new(big.Int).Sub(big.NewInt(v.value), big.NewInt(o)))
}

func (v *LongValue) Multiply(other Value) (Value, error) {
	o, err := v.operand(other)
	if err != nil {
		return nil, err
	}

	if r, ok := mulChecked(v.value, o, math.MinInt64, math.MaxInt64); ok {
		return GetLong(r), nil
	}
	return nil, longOverflow(new(big.Int).Mul(big.NewInt(v.value), big.NewInt(o)))
}

func (v *LongValue) Divide(other Value) (Value, error) {
	o, err := v.operand(other)
	if err != nil {
		return nil, err
	}
	if o == 0 {
		return nil, sqlerrors.ErrDivisionByZero
	}

	if r, ok := divChecked(v.value, o, math.MinInt64); ok {
		return GetLong(r), nil
	}
	return nil, longOverflow(new(big.Int).Quo(big.NewInt(v.value), big.NewInt(o)))
}

func (v *LongValue) Modulus(other Value) (Value, error) {
	o, err := v.operand(other)
	if err != nil {
		return nil, err
	}
	if o == 0 {
		return nil, sqlerrors.ErrModulusByZero
	}

	// MinInt64 % -1 is 0 in Go.
	return GetLong(v.value % o), nil
}

func (v *LongValue) Negate() (Value, error) {
	if r, ok := negChecked(v.value, math.MinInt64); ok {
		return GetLong(r), nil
	}
	return nil, longOverflow(new(big.Int).Neg(big.NewInt(v.value)))
}

func (v *LongValue) Signum() int {
	return cmp.Compare(v.value, 0)
}

func (v *LongValue) CompareTo(other Value) int {
	return cmp.Compare(v.value, other.(*LongValue).value)
}

func (v *LongValue) Equal(other Value) bool {
	o, ok := other.(*LongValue)
	return ok && o.value == v.value
}

func (v *LongValue) HashInput(scratch []byte) []byte {
	const length = 1 + 8
	var buffer []byte
	if length <= len(scratch) {
		buffer = scratch[:length]
	} else {
		buffer = make([]byte, length)
	}

	buffer[0] = byte(KindLong)
	binary.BigEndian.PutUint64(buffer[1:], uint64(v.value))
	return buffer
}

// String implements fmt.Stringer.
func (v *LongValue) String() string {
	return strconv.FormatInt(v.value, 10)
}

func (v *LongValue) SQL() string {
	return v.String()
}

// GoString implements fmt.GoStringer.
func (v *LongValue) GoString() string {
	return fmt.Sprintf("%v(%d)", KindLong, v.value)
}

var _ Value = (*LongValue)(nil)
var _ fmt.GoStringer = (*LongValue)(nil)
