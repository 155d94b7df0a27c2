package sqlerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/sqlvalue/internal/token"
)

var (
	ErrParseUnexpectedToken                 = errors.New("expected expression.")
	ErrParseUnexpectedVariableName          = errors.New("expect variable name.")
	ErrParseExpectedEqualAfterSetName       = errors.New("expect '=' after variable name.")
	ErrParseExpectedRightParenToken         = errors.New("expected ')' after expression.")
	ErrParseExpectedRightParenArgsToken     = errors.New("expect ')' after arguments.")
	ErrParseExpectedLeftParenCastToken      = errors.New("expect '(' after CAST.")
	ErrParseExpectedAsCastToken             = errors.New("expect AS in CAST.")
	ErrParseExpectedTypeName                = errors.New("expect type name.")
	ErrParseExpectedSemicolonTokenAfterSet  = errors.New("expect ';' after SET.")
	ErrParseExpectedSemicolonTokenAfterExpr = errors.New("expect ';' after value.")
	ErrParseTooManyArguments                = errors.New("can't have more than 255 arguments.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] parse error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
