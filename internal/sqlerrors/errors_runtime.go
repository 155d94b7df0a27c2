package sqlerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/sqlvalue/internal/token"
)

var (
	ErrRuntimeUndefinedVariable    = errors.New("undefined variable")
	ErrRuntimeCalleeMustBeFunction = errors.New("can only call builtin functions.")
	ErrRuntimeInvalidCastType      = errors.New("invalid cast target type.")
)

func ErrRuntimeCalleeArityError(expectedArity int, actualArity int) error {
	return fmt.Errorf("expected %d arguments but got %d.", expectedArity, actualArity)
}

func ErrRuntimeUndefinedFunction(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeCalleeMustBeFunction, name)
}

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok, cause}
}

type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] at %s: %v", r.tok.Line, r.tok.Lexeme, r.cause)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
