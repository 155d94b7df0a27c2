package parser

import (
	"context"
	"strconv"
	"strings"
)

// AstPrinter renders expressions and statements as parenthesized prefix trees.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinary implements ExprVisitor.
func (p *AstPrinter) VisitBinary(ctx context.Context, expr *ExprBinary) (any, error) {
	return p.parenthesize(ctx, expr.Operator.Lexeme, expr.Left, expr.Right), nil
}

// VisitUnary implements ExprVisitor.
func (p *AstPrinter) VisitUnary(ctx context.Context, expr *ExprUnary) (any, error) {
	return p.parenthesize(ctx, expr.Operator.Lexeme, expr.Right), nil
}

// VisitGrouping implements ExprVisitor.
func (p *AstPrinter) VisitGrouping(ctx context.Context, expr *ExprGrouping) (any, error) {
	return p.parenthesize(ctx, "group", expr.Expression), nil
}

// VisitLiteral implements ExprVisitor.
func (p *AstPrinter) VisitLiteral(ctx context.Context, expr *ExprLiteral) (any, error) {
	return strconv.FormatInt(expr.Value, 10), nil
}

// VisitVariable implements ExprVisitor.
func (p *AstPrinter) VisitVariable(ctx context.Context, expr *ExprVariable) (any, error) {
	return expr.Name.Lexeme, nil
}

// VisitCall implements ExprVisitor.
func (p *AstPrinter) VisitCall(ctx context.Context, expr *ExprCall) (any, error) {
	return p.parenthesize(ctx, "call "+expr.Callee.Lexeme, expr.Arguments...), nil
}

// VisitCast implements ExprVisitor.
func (p *AstPrinter) VisitCast(ctx context.Context, expr *ExprCast) (any, error) {
	return p.parenthesize(ctx, "cast "+strings.ToUpper(expr.Type.Lexeme), expr.Expression), nil
}

// VisitExpressions implements StmtVisitor.
func (p *AstPrinter) VisitExpressions(ctx context.Context, stmt *StmtExpressions) (any, error) {
	return p.parenthesize(ctx, "row", stmt.Expressions...), nil
}

// VisitSet implements StmtVisitor.
func (p *AstPrinter) VisitSet(ctx context.Context, stmt *StmtSet) (any, error) {
	return p.parenthesize(ctx, "set "+stmt.Name.Lexeme, stmt.Value), nil
}

func (p *AstPrinter) parenthesize(ctx context.Context, name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.print(ctx, expr))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.print(context.Background(), expr)
}

// PrintStmts renders one statement per line.
func (p *AstPrinter) PrintStmts(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		v, _ := stmt.Accept(context.Background(), p)
		lines[i] = p.asStr(v)
	}
	return strings.Join(lines, "\n")
}

func (p *AstPrinter) print(ctx context.Context, expr Expr) string {
	if expr == nil {
		return "<nil>"
	}
	v, _ := expr.Accept(ctx, p)
	return p.asStr(v)
}

func (p *AstPrinter) asStr(v any) string {
	if v == nil {
		return "<nil>"
	}

	return v.(string)
}

var _ ExprVisitor = (*AstPrinter)(nil)
var _ StmtVisitor = (*AstPrinter)(nil)
