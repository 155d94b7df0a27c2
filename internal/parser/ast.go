package parser

import (
	"context"

	"github.com/leonardinius/sqlvalue/internal/token"
)

type ExprVisitor interface {
	VisitBinary(ctx context.Context, expr *ExprBinary) (any, error)
	VisitUnary(ctx context.Context, expr *ExprUnary) (any, error)
	VisitGrouping(ctx context.Context, expr *ExprGrouping) (any, error)
	VisitLiteral(ctx context.Context, expr *ExprLiteral) (any, error)
	VisitVariable(ctx context.Context, expr *ExprVariable) (any, error)
	VisitCall(ctx context.Context, expr *ExprCall) (any, error)
	VisitCast(ctx context.Context, expr *ExprCast) (any, error)
}

type StmtVisitor interface {
	VisitExpressions(ctx context.Context, stmt *StmtExpressions) (any, error)
	VisitSet(ctx context.Context, stmt *StmtSet) (any, error)
}

type Expr interface {
	Accept(ctx context.Context, v ExprVisitor) (any, error)
}

type Stmt interface {
	Accept(ctx context.Context, v StmtVisitor) (any, error)
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

func (e *ExprBinary) Accept(ctx context.Context, v ExprVisitor) (any, error) {
	return v.VisitBinary(ctx, e)
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

func (e *ExprUnary) Accept(ctx context.Context, v ExprVisitor) (any, error) {
	return v.VisitUnary(ctx, e)
}

type ExprGrouping struct {
	Expression Expr
}

func (e *ExprGrouping) Accept(ctx context.Context, v ExprVisitor) (any, error) {
	return v.VisitGrouping(ctx, e)
}

// ExprLiteral holds an unsigned integer literal as scanned.
type ExprLiteral struct {
	Value int64
}

func (e *ExprLiteral) Accept(ctx context.Context, v ExprVisitor) (any, error) {
	return v.VisitLiteral(ctx, e)
}

type ExprVariable struct {
	Name *token.Token
}

func (e *ExprVariable) Accept(ctx context.Context, v ExprVisitor) (any, error) {
	return v.VisitVariable(ctx, e)
}

type ExprCall struct {
	Callee    *token.Token
	Paren     *token.Token
	Arguments []Expr
}

func (e *ExprCall) Accept(ctx context.Context, v ExprVisitor) (any, error) {
	return v.VisitCall(ctx, e)
}

type ExprCast struct {
	Keyword    *token.Token
	Expression Expr
	Type       *token.Token
}

func (e *ExprCast) Accept(ctx context.Context, v ExprVisitor) (any, error) {
	return v.VisitCast(ctx, e)
}

// StmtExpressions evaluates a comma separated list of expressions as one row.
type StmtExpressions struct {
	Expressions []Expr
}

func (s *StmtExpressions) Accept(ctx context.Context, v StmtVisitor) (any, error) {
	return v.VisitExpressions(ctx, s)
}

type StmtSet struct {
	Name  *token.Token
	Value Expr
}

func (s *StmtSet) Accept(ctx context.Context, v StmtVisitor) (any, error) {
	return v.VisitSet(ctx, s)
}

var _ Expr = (*ExprBinary)(nil)
var _ Expr = (*ExprUnary)(nil)
var _ Expr = (*ExprGrouping)(nil)
var _ Expr = (*ExprLiteral)(nil)
var _ Expr = (*ExprVariable)(nil)
var _ Expr = (*ExprCall)(nil)
var _ Expr = (*ExprCast)(nil)
var _ Stmt = (*StmtExpressions)(nil)
var _ Stmt = (*StmtSet)(nil)
