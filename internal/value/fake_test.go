package value_test

import (
	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
	"github.com/leonardinius/sqlvalue/internal/value"
)

// stringValue stands in for a kind implemented outside this package.
type stringValue string

func (s stringValue) Kind() value.Kind { return value.KindString }

func (s stringValue) unsupported(other value.Value) (value.Value, error) {
	return nil, sqlerrors.NewCoercionError(s.Kind(), other.Kind())
}

func (s stringValue) Add(other value.Value) (value.Value, error)      { return s.unsupported(other) }
func (s stringValue) Subtract(other value.Value) (value.Value, error) { return s.unsupported(other) }
func (s stringValue) Multiply(other value.Value) (value.Value, error) { return s.unsupported(other) }
func (s stringValue) Divide(other value.Value) (value.Value, error)   { return s.unsupported(other) }
func (s stringValue) Modulus(other value.Value) (value.Value, error)  { return s.unsupported(other) }
func (s stringValue) Negate() (value.Value, error)                    { return s.unsupported(s) }
func (s stringValue) Signum() int                                     { return 0 }
func (s stringValue) CompareTo(other value.Value) int                 { return 0 }
func (s stringValue) Equal(other value.Value) bool                    { return other == s }
func (s stringValue) String() string                                  { return string(s) }
func (s stringValue) SQL() string                                     { return "'" + string(s) + "'" }
func (s stringValue) HashInput(scratch []byte) []byte                 { return []byte(s) }

var _ value.Value = stringValue("")
