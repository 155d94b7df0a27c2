package token

import (
	"fmt"
	"strings"
)

// Token represents a lexical token. Literal holds the int64 payload of NUMBER
// tokens and is nil otherwise.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
}

// keywords are matched case-insensitively.
var keywords = map[string]TokenType{
	"as":      AS,
	"bigint":  BIGINT,
	"cast":    CAST,
	"int":     INT,
	"integer": INTEGER,
	"set":     SET,
}

func NewToken(t TokenType, lexeme string, literal any, line int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal any, line int) *Token {
	tt := NewToken(t, lexeme, literal, line)
	return &tt
}

// LookupKeyword reports the keyword type of identifier, ignoring case.
func LookupKeyword(identifier string) (TokenType, bool) {
	t, ok := keywords[strings.ToLower(identifier)]
	return t, ok
}

// IsCastType reports whether t names a CAST target type.
func (t TokenType) IsCastType() bool {
	return t == INT || t == INTEGER || t == BIGINT
}

// Int64 returns the NUMBER payload. Panics on other tokens.
func (t Token) Int64() int64 {
	n, ok := t.Literal.(int64)
	if !ok {
		panic(fmt.Sprintf("token %s carries no integer literal", t.Type))
	}
	return n
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d}", t.Type, t.Lexeme, t.Literal, t.Line)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
