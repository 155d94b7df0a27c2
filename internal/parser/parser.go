package parser

import (
	"errors"
	"fmt"

	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
	"github.com/leonardinius/sqlvalue/internal/token"
)

const maxArguments = 255

var (
	nilExpr       Expr   = nil
	nilStmt       Stmt   = nil
	nilStatements []Stmt = nil
)

type Parser interface {
	Parse() ([]Stmt, error)
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
}

func NewParser(tokens []token.Token) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:  tokens,
		current: 0,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (statements []Stmt, err error) {
	var stmt Stmt
	for !p.isDone() {
		stmt, err = p.statement(), p.err
		if err != nil {
			break
		}
		statements = append(statements, stmt)
	}

	if err == nil {
		return statements, nil
	}

	// if we are at error state, we do not return invalid ast tree
	// but keep going to collect the errors of the following statements
	errs := []error{p.err}
	for !p.isAtEnd() {
		if p.err != nil {
			p.synchronize()
			p.err = nil
			continue
		}
		if _ = p.statement(); p.err != nil {
			errs = append(errs, p.err)
		}
	}
	return nilStatements, errors.Join(errs...)
}

func (p *parser) statement() Stmt {
	if p.match(token.SET) {
		return p.setStatement()
	}

	return p.expressionsStatement()
}

func (p *parser) setStatement() Stmt {
	if !p.match(token.IDENTIFIER) {
		return p.reportStmtError(sqlerrors.ErrParseUnexpectedVariableName)
	}
	name := p.previous()

	if !p.match(token.EQUAL) {
		return p.reportStmtError(sqlerrors.ErrParseExpectedEqualAfterSetName)
	}

	value := p.expression()
	if !p.endOfStatement() {
		return p.reportStmtError(sqlerrors.ErrParseExpectedSemicolonTokenAfterSet)
	}

	return &StmtSet{Name: name, Value: value}
}

func (p *parser) expressionsStatement() Stmt {
	exprs := []Expr{p.expression()}
	for p.match(token.COMMA) {
		exprs = append(exprs, p.expression())
	}

	if !p.endOfStatement() {
		return p.reportStmtError(sqlerrors.ErrParseExpectedSemicolonTokenAfterExpr)
	}

	return &StmtExpressions{Expressions: exprs}
}

// endOfStatement accepts ';' or the end of input.
func (p *parser) endOfStatement() bool {
	return p.match(token.SEMICOLON) || p.isAtEnd()
}

func (p *parser) expression() Expr {
	return p.comparison()
}

func (p *parser) comparison() Expr {
	expr := p.term()

	for p.anyMatch(token.EQUAL, token.BANG_EQUAL, token.LESS_GREATER,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()

	for p.anyMatch(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()

	for p.anyMatch(token.SLASH, token.STAR, token.PERCENT) {
		operator := p.previous()
		right := p.unary()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.match(token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ExprUnary{
			Operator: operator,
			Right:    right,
		}
	}

	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.NUMBER) {
		tok := p.previous()
		return &ExprLiteral{Value: tok.Int64()}
	}

	if p.match(token.CAST) {
		return p.cast()
	}

	if p.match(token.IDENTIFIER) {
		tok := p.previous()
		if p.match(token.LEFT_PAREN) {
			return p.finishCall(tok)
		}
		return &ExprVariable{Name: tok}
	}

	return p.grouping()
}

func (p *parser) cast() Expr {
	keyword := p.previous()
	if !p.match(token.LEFT_PAREN) {
		return p.reportExprError(sqlerrors.ErrParseExpectedLeftParenCastToken)
	}

	expr := p.expression()
	if !p.match(token.AS) {
		return p.reportExprError(sqlerrors.ErrParseExpectedAsCastToken)
	}

	if p.isDone() || !p.peek().Type.IsCastType() {
		return p.reportExprError(sqlerrors.ErrParseExpectedTypeName)
	}
	typeName := p.advance()

	if !p.match(token.RIGHT_PAREN) {
		return p.reportExprError(sqlerrors.ErrParseExpectedRightParenToken)
	}

	return &ExprCast{Keyword: keyword, Expression: expr, Type: typeName}
}

func (p *parser) finishCall(callee *token.Token) Expr {
	var arguments []Expr

	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(arguments) >= maxArguments {
				return p.reportExprError(sqlerrors.ErrParseTooManyArguments)
			}
			arguments = append(arguments, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if !p.match(token.RIGHT_PAREN) {
		return p.reportExprError(sqlerrors.ErrParseExpectedRightParenArgsToken)
	}

	return &ExprCall{Callee: callee, Paren: p.previous(), Arguments: arguments}
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		expr := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportExprError(sqlerrors.ErrParseExpectedRightParenToken)
		}
		return &ExprGrouping{Expression: expr}
	}

	return p.reportExprError(sqlerrors.ErrParseUnexpectedToken)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// Be carefull with isAtEnd, it does not check for parse errors.
// Use isDone instead.
// isAtEnd is used from top level Parse, synchronize and advance ony.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportStmtError(err error) Stmt {
	if p.err != nil {
		return nilStmt
	}

	t := p.peek()
	p.err = sqlerrors.NewParseError(t, err)

	return nilStmt
}

func (p *parser) reportExprError(err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	p.err = sqlerrors.NewParseError(p.peek(), err)
	return nilExpr
}

func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		if p.peek().Type == token.SET {
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
