package interpreter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
	"github.com/leonardinius/sqlvalue/internal/token"
	"github.com/leonardinius/sqlvalue/internal/value"
)

// environment holds SET bindings. Names are case-insensitive.
type environment struct {
	values map[string]value.Value
}

type envCtxKey struct{}

func NewEnvironment() *environment {
	return &environment{}
}

func MustEnvFromContext(ctx context.Context) *environment {
	env, ok := ctx.Value(envCtxKey{}).(*environment)
	if !ok {
		panic("unexpected from MustEnvFromContext")
	}
	return env
}

func (e *environment) Define(name string, v value.Value) {
	if e.values == nil {
		e.values = make(map[string]value.Value)
	}
	e.values[strings.ToLower(name)] = v
}

func (e *environment) Get(name *token.Token) (value.Value, error) {
	if v, ok := e.values[strings.ToLower(name.Lexeme)]; ok {
		return v, nil
	}

	return nil, e.undefinedVariable(name)
}

func (e *environment) AsContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, envCtxKey{}, e)
}

func (e *environment) undefinedVariable(name *token.Token) error {
	err := fmt.Errorf("%w '%s'.", sqlerrors.ErrRuntimeUndefinedVariable, name.Lexeme)
	return sqlerrors.NewRuntimeError(name, err)
}

// String lists the bindings sorted by name.
func (e *environment) String() string {
	names := maps.Keys(e.values)
	slices.Sort(names)

	w := new(strings.Builder)
	w.WriteString("{")
	for idx, name := range names {
		if idx > 0 {
			w.WriteString(", ")
		}
		fmt.Fprintf(w, "%s=%#v", name, e.values[name])
	}
	w.WriteString("}")
	return w.String()
}

var _ fmt.Stringer = (*environment)(nil)
