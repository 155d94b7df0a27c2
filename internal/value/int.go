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

// IntCacheSize bounds the interned INT payloads to [0, IntCacheSize).
const IntCacheSize = 1000

// IntValue is the INT kind: a 32-bit signed integer.
type IntValue struct {
	value int32
}

var intCache = newInternCache(int32(IntCacheSize), newIntValue)

func newIntValue(i int32) *IntValue {
	return &IntValue{value: i}
}

// GetInt returns the shared instance for payloads in [0, IntCacheSize) and a
// fresh one otherwise.
func GetInt(i int32) *IntValue {
	if v, ok := intCache.get(i); ok {
		return v
	}
	return newIntValue(i)
}

// intFromScratch narrows a 64-bit intermediate result to INT.
func intFromScratch(x int64) (Value, error) {
	if x < math.MinInt32 || x > math.MaxInt32 {
		return nil, sqlerrors.NewOverflowError(KindInt, big.NewInt(x))
	}
	return GetInt(int32(x)), nil
}

func (v *IntValue) Kind() Kind {
	return KindInt
}

func (v *IntValue) Int32() int32 {
	return v.value
}

func (v *IntValue) Add(other Value) (Value, error) {
	if o, ok := other.(*IntValue); ok {
		return intFromScratch(int64(v.value) + int64(o.value))
	}
	return promoted(v, other, Value.Add)
}

func (v *IntValue) Subtract(other Value) (Value, error) {
	if o, ok := other.(*IntValue); ok {
		return intFromScratch(int64(v.value) - int64(o.value))
	}
	return promoted(v, other, Value.Subtract)
}

func (v *IntValue) Multiply(other Value) (Value, error) {
	if o, ok := other.(*IntValue); ok {
		return intFromScratch(int64(v.value) * int64(o.value))
	}
	return promoted(v, other, Value.Multiply)
}

func (v *IntValue) Divide(other Value) (Value, error) {
	if o, ok := other.(*IntValue); ok {
		if o.value == 0 {
			return nil, sqlerrors.ErrDivisionByZero
		}
		// MinInt32 / -1 leaves the INT range.
		return intFromScratch(int64(v.value) / int64(o.value))
	}
	return promoted(v, other, Value.Divide)
}

func (v *IntValue) Modulus(other Value) (Value, error) {
	if o, ok := other.(*IntValue); ok {
		if o.value == 0 {
			return nil, sqlerrors.ErrModulusByZero
		}
		return intFromScratch(int64(v.value) % int64(o.value))
	}
	return promoted(v, other, Value.Modulus)
}

func (v *IntValue) Negate() (Value, error) {
	return intFromScratch(-int64(v.value))
}

func (v *IntValue) Signum() int {
	return cmp.Compare(v.value, 0)
}

func (v *IntValue) CompareTo(other Value) int {
	return cmp.Compare(v.value, other.(*IntValue).value)
}

func (v *IntValue) Equal(other Value) bool {
	o, ok := other.(*IntValue)
	return ok && o.value == v.value
}

func (v *IntValue) HashInput(scratch []byte) []byte {
	const length = 1 + 4
	var buffer []byte
	if length <= len(scratch) {
		buffer = scratch[:length]
	} else {
		buffer = make([]byte, length)
	}

	buffer[0] = byte(KindInt)
	binary.BigEndian.PutUint32(buffer[1:], uint32(v.value))
	return buffer
}

// String implements fmt.Stringer.
func (v *IntValue) String() string {
	return strconv.FormatInt(int64(v.value), 10)
}

func (v *IntValue) SQL() string {
	return v.String()
}

// GoString implements fmt.GoStringer.
func (v *IntValue) GoString() string {
	return fmt.Sprintf("%v(%d)", KindInt, v.value)
}

var _ Value = (*IntValue)(nil)
var _ fmt.GoStringer = (*IntValue)(nil)
