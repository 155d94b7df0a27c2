package interpreter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/leonardinius/sqlvalue/internal/value"
)

type Arity int

func (a Arity) String() string {
	return strconv.Itoa(int(a))
}

type Callable interface {
	Arity() Arity
	Call(ctx context.Context, arguments []value.Value) (value.Value, error)
}

// ========  ========  ========  ========  ========  ========  ========

type NativeFunction1 func(ctx context.Context, arg1 value.Value) (value.Value, error)
type NativeFunction2 func(ctx context.Context, arg1, arg2 value.Value) (value.Value, error)

// Arity implements Callable.
func (n NativeFunction1) Arity() Arity {
	return 1
}

// Call implements Callable.
func (n NativeFunction1) Call(ctx context.Context, arguments []value.Value) (value.Value, error) {
	return n(ctx, arguments[0])
}

// String implements fmt.Stringer.
func (n NativeFunction1) String() string {
	return nativeName(n.Arity())
}

// GoString implements fmt.GoStringer.
func (n NativeFunction1) GoString() string {
	return n.String()
}

// Arity implements Callable.
func (n NativeFunction2) Arity() Arity {
	return 2
}

// Call implements Callable.
func (n NativeFunction2) Call(ctx context.Context, arguments []value.Value) (value.Value, error) {
	return n(ctx, arguments[0], arguments[1])
}

// String implements fmt.Stringer.
func (n NativeFunction2) String() string {
	return nativeName(n.Arity())
}

// GoString implements fmt.GoStringer.
func (n NativeFunction2) GoString() string {
	return n.String()
}

var _ Callable = (NativeFunction1)(nil)
var _ fmt.Stringer = (NativeFunction1)(nil)
var _ fmt.GoStringer = (NativeFunction1)(nil)
var _ Callable = (NativeFunction2)(nil)
var _ fmt.Stringer = (NativeFunction2)(nil)
var _ fmt.GoStringer = (NativeFunction2)(nil)

func nativeName(arity Arity) string {
	return "<native fn/" + arity.String() + ">"
}
