package interpreter

import (
	"context"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/sqlvalue/internal/value"
)

var builtins = map[string]Callable{
	"ABS":  NativeFunction1(StdFnAbs),
	"SIGN": NativeFunction1(StdFnSign),
	"MOD":  NativeFunction2(StdFnMod),
}

// BuiltinNames returns the names of the builtin functions, sorted.
func BuiltinNames() []string {
	names := maps.Keys(builtins)
	slices.Sort(names)
	return names
}

func StdFnAbs(ctx context.Context, v value.Value) (value.Value, error) {
	return value.Abs(v)
}

// StdFnSign returns the signum as an INT.
func StdFnSign(ctx context.Context, v value.Value) (value.Value, error) {
	return value.GetInt(int32(v.Signum())), nil
}

func StdFnMod(ctx context.Context, a, b value.Value) (value.Value, error) {
	return a.Modulus(b)
}
