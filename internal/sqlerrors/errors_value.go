package sqlerrors

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrUnsupportedCoercion = errors.New("unsupported coercion")
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrModulusByZero       = fmt.Errorf("modulus: %w", ErrDivisionByZero)
)

// CoercionError reports an operand whose kind can't take part in an operation
// together with the receiver's kind.
type CoercionError struct {
	From fmt.Stringer
	To   fmt.Stringer
}

func NewCoercionError(from, to fmt.Stringer) error {
	return &CoercionError{From: from, To: to}
}

// Error implements error.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("can't convert from %v to %v: %v", e.From, e.To, ErrUnsupportedCoercion)
}

func (e *CoercionError) Unwrap() error {
	return ErrUnsupportedCoercion
}

// OverflowError carries the exact mathematical result which does not fit Kind.
type OverflowError struct {
	Kind  fmt.Stringer
	Value *big.Int
}

func NewOverflowError(kind fmt.Stringer, x *big.Int) error {
	return &OverflowError{Kind: kind, Value: x}
}

// Error implements error.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: %v overflow, x=%v", ErrArithmeticOverflow, e.Kind, e.Value)
}

func (e *OverflowError) Unwrap() error {
	return ErrArithmeticOverflow
}

var _ error = (*CoercionError)(nil)
var _ unwrapInterface = (*CoercionError)(nil)
var _ error = (*OverflowError)(nil)
var _ unwrapInterface = (*OverflowError)(nil)
