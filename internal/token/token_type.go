package token

import "strconv"

type TokenType int

const (
	// Single-character tokens.
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	COMMA
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR
	PERCENT

	// One or two character tokens.
	EQUAL
	BANG_EQUAL
	LESS_GREATER
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals.
	IDENTIFIER
	NUMBER

	// Keywords.
	AS
	BIGINT
	CAST
	INT
	INTEGER
	SET

	EOF
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	COMMA:         "COMMA",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	SLASH:         "SLASH",
	STAR:          "STAR",
	PERCENT:       "PERCENT",
	EQUAL:         "EQUAL",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS_GREATER:  "LESS_GREATER",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	AS:            "AS",
	BIGINT:        "BIGINT",
	CAST:          "CAST",
	INT:           "INT",
	INTEGER:       "INTEGER",
	SET:           "SET",
	EOF:           "EOF",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}
