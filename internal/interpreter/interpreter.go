package interpreter

import (
	"context"
	"fmt"
	"strings"

	"github.com/leonardinius/sqlvalue/internal/parser"
	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
	"github.com/leonardinius/sqlvalue/internal/token"
	"github.com/leonardinius/sqlvalue/internal/value"
)

type Interpreter interface {
	// Interpret executes the given statements.
	// Every row is written to the configured stdout as it is produced.
	// Returns the rendered last row and the first error, if any.
	//
	// Not thread safe.
	Interpret(ctx context.Context, stmts []parser.Stmt) (string, error)

	// Evaluate evaluates a single expression against the global bindings.
	//
	// Not thread safe.
	Evaluate(ctx context.Context, expr parser.Expr) (value.Value, error)
}

type interpreter struct {
	opts *interpreterOpts
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...)}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(ctx context.Context, stmts []parser.Stmt) (string, error) {
	ctx = i.opts.globals.AsContext(ctx)

	var last string
	for _, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		out, err := stmt.Accept(ctx, i)
		if err != nil {
			return "", err
		}
		last = out.(string)
	}

	return last, nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(ctx context.Context, expr parser.Expr) (value.Value, error) {
	return i.evaluate(i.opts.globals.AsContext(ctx), expr)
}

// VisitExpressions implements parser.StmtVisitor.
func (i *interpreter) VisitExpressions(ctx context.Context, stmt *parser.StmtExpressions) (any, error) {
	columns := make([]string, len(stmt.Expressions))
	for idx, expr := range stmt.Expressions {
		v, err := i.evaluate(ctx, expr)
		if err != nil {
			return nil, err
		}
		columns[idx] = i.stringify(v)
	}

	row := strings.Join(columns, ", ")
	i.println(row)
	return row, nil
}

// VisitSet implements parser.StmtVisitor.
func (i *interpreter) VisitSet(ctx context.Context, stmt *parser.StmtSet) (any, error) {
	v, err := i.evaluate(ctx, stmt.Value)
	if err != nil {
		return nil, err
	}

	MustEnvFromContext(ctx).Define(stmt.Name.Lexeme, v)
	return i.stringify(v), nil
}

// VisitBinary implements parser.ExprVisitor.
func (i *interpreter) VisitBinary(ctx context.Context, expr *parser.ExprBinary) (any, error) {
	left, err := i.evaluate(ctx, expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(ctx, expr.Right)
	if err != nil {
		return nil, err
	}

	var result value.Value
	switch expr.Operator.Type {
	case token.PLUS:
		result, err = left.Add(right)
	case token.MINUS:
		result, err = left.Subtract(right)
	case token.STAR:
		result, err = left.Multiply(right)
	case token.SLASH:
		result, err = left.Divide(right)
	case token.PERCENT:
		result, err = left.Modulus(right)
	case token.EQUAL,
		token.BANG_EQUAL,
		token.LESS_GREATER,
		token.LESS,
		token.LESS_EQUAL,
		token.GREATER,
		token.GREATER_EQUAL:
		result, err = i.compare(expr.Operator, left, right)
	default:
		return i.unreachable()
	}

	if err != nil {
		return nil, sqlerrors.NewRuntimeError(expr.Operator, err)
	}
	return result, nil
}

// VisitUnary implements parser.ExprVisitor.
func (i *interpreter) VisitUnary(ctx context.Context, expr *parser.ExprUnary) (any, error) {
	right, err := i.evaluate(ctx, expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.MINUS:
		result, err := right.Negate()
		if err != nil {
			return nil, sqlerrors.NewRuntimeError(expr.Operator, err)
		}
		return result, nil
	}

	return i.unreachable()
}

// VisitGrouping implements parser.ExprVisitor.
func (i *interpreter) VisitGrouping(ctx context.Context, expr *parser.ExprGrouping) (any, error) {
	return i.evaluate(ctx, expr.Expression)
}

// VisitLiteral implements parser.ExprVisitor.
func (i *interpreter) VisitLiteral(ctx context.Context, expr *parser.ExprLiteral) (any, error) {
	return value.FromInt64(expr.Value), nil
}

// VisitVariable implements parser.ExprVisitor.
func (i *interpreter) VisitVariable(ctx context.Context, expr *parser.ExprVariable) (any, error) {
	return MustEnvFromContext(ctx).Get(expr.Name)
}

// VisitCall implements parser.ExprVisitor.
func (i *interpreter) VisitCall(ctx context.Context, expr *parser.ExprCall) (any, error) {
	callee, ok := builtins[strings.ToUpper(expr.Callee.Lexeme)]
	if !ok {
		return nil, sqlerrors.NewRuntimeError(expr.Callee, sqlerrors.ErrRuntimeUndefinedFunction(expr.Callee.Lexeme))
	}

	if int(callee.Arity()) != len(expr.Arguments) {
		err := sqlerrors.ErrRuntimeCalleeArityError(int(callee.Arity()), len(expr.Arguments))
		return nil, sqlerrors.NewRuntimeError(expr.Paren, err)
	}

	arguments := make([]value.Value, len(expr.Arguments))
	for idx, arg := range expr.Arguments {
		v, err := i.evaluate(ctx, arg)
		if err != nil {
			return nil, err
		}
		arguments[idx] = v
	}

	result, err := callee.Call(ctx, arguments)
	if err != nil {
		return nil, sqlerrors.NewRuntimeError(expr.Callee, err)
	}
	return result, nil
}

// VisitCast implements parser.ExprVisitor.
func (i *interpreter) VisitCast(ctx context.Context, expr *parser.ExprCast) (any, error) {
	v, err := i.evaluate(ctx, expr.Expression)
	if err != nil {
		return nil, err
	}

	var kind value.Kind
	switch expr.Type.Type {
	case token.INT, token.INTEGER:
		kind = value.KindInt
	case token.BIGINT:
		kind = value.KindLong
	default:
		return nil, sqlerrors.NewRuntimeError(expr.Type, sqlerrors.ErrRuntimeInvalidCastType)
	}

	result, err := value.Convert(v, kind)
	if err != nil {
		return nil, sqlerrors.NewRuntimeError(expr.Keyword, err)
	}
	return result, nil
}

// compare promotes both operands and yields INT 1 or 0.
func (i *interpreter) compare(operator *token.Token, left, right value.Value) (value.Value, error) {
	left, right, err := value.Promote(left, right)
	if err != nil {
		return nil, err
	}

	c := value.Compare(left, right)
	var holds bool
	switch operator.Type {
	case token.EQUAL:
		holds = c == 0
	case token.BANG_EQUAL, token.LESS_GREATER:
		holds = c != 0
	case token.LESS:
		holds = c < 0
	case token.LESS_EQUAL:
		holds = c <= 0
	case token.GREATER:
		holds = c > 0
	case token.GREATER_EQUAL:
		holds = c >= 0
	}

	if holds {
		return value.GetInt(1), nil
	}
	return value.GetInt(0), nil
}

func (i *interpreter) evaluate(ctx context.Context, expr parser.Expr) (value.Value, error) {
	v, err := expr.Accept(ctx, i)
	if err != nil {
		return nil, err
	}
	return v.(value.Value), nil
}

func (i *interpreter) stringify(v value.Value) string {
	if i.opts.showKinds {
		return fmt.Sprintf("%s::%v", v.SQL(), v.Kind())
	}
	return v.SQL()
}

func (i *interpreter) println(row string) {
	_, _ = fmt.Fprintln(i.opts.stdout, row)
}

func (i *interpreter) unreachable() (any, error) {
	panic("unreachable")
}

var _ parser.ExprVisitor = (*interpreter)(nil)
var _ parser.StmtVisitor = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
