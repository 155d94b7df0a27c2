package interpreter_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/sqlvalue/internal/interpreter"
	"github.com/leonardinius/sqlvalue/internal/parser"
	"github.com/leonardinius/sqlvalue/internal/scanner"
	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
	"github.com/leonardinius/sqlvalue/internal/value"
)

func TestInterpret(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name          string
		input         string
		expectedEval  string
		expectedOut   string
		expectedError string
	}{
		{name: `simple expression`, input: `1 + 2;`, expectedEval: `3`, expectedOut: "3\n"},
		{name: `no trailing semicolon`, input: `1 + 2`, expectedEval: `3`, expectedOut: "3\n"},
		{name: `grouped`, input: `(1 + 2);`, expectedEval: `3`},
		{name: `nested`, input: `(1 + (2 + 3));`, expectedEval: `6`},
		{name: `precedence star`, input: `1 + 2 * 3;`, expectedEval: `7`},
		{name: `precedence slash`, input: `1 + 9 / 3;`, expectedEval: `4`},
		{name: `truncating division`, input: `7 / 2, -7 / 2;`, expectedEval: `3, -3`},
		{name: `modulus sign of dividend`, input: `7 % 3, -7 % 3, 7 % -3;`, expectedEval: `1, -1, 1`},
		{name: `unary minus`, input: `-5, - -5, -(-5);`, expectedEval: `-5, 5, 5`},
		{name: `double dash starts a comment`, input: `5 --5;`, expectedEval: `5`},
		{name: `row`, input: `1, 2, 3;`, expectedEval: `1, 2, 3`, expectedOut: "1, 2, 3\n"},
		{name: `multiple rows`, input: `1; 2;`, expectedEval: `2`, expectedOut: "1\n2\n"},
		{name: `eq`, input: `1 = 1, 1 = 2;`, expectedEval: `1, 0`},
		{name: `not eq`, input: `1 != 1, 1 <> 2;`, expectedEval: `0, 1`},
		{name: `lt`, input: `1 < 2, 1 < 1;`, expectedEval: `1, 0`},
		{name: `lte`, input: `2 <= 1, 1 <= 1;`, expectedEval: `0, 1`},
		{name: `gt`, input: `2 > 1, 1 > 1;`, expectedEval: `1, 0`},
		{name: `gte`, input: `1 >= 2, 1 >= 1;`, expectedEval: `0, 1`},
		{name: `compare across kinds`, input: `3000000000 > 1, 1 = CAST(1 AS BIGINT);`, expectedEval: `1, 1`},
		{name: `int max`, input: `2147483647;`, expectedEval: `2147483647`},
		{name: `literal widens to long`, input: `2147483648;`, expectedEval: `2147483648`},
		{name: `int plus long promotes`, input: `1 + CAST(2147483647 AS BIGINT);`, expectedEval: `2147483648`},
		{name: `long plus int promotes`, input: `CAST(2147483647 AS BIGINT) + 1;`, expectedEval: `2147483648`},
		{name: `cast narrowing`, input: `CAST(CAST(5 AS BIGINT) AS INT);`, expectedEval: `5`},
		{name: `cast integer`, input: `cast(5 as integer);`, expectedEval: `5`},
		{name: `abs`, input: `ABS(-5), abs(5);`, expectedEval: `5, 5`},
		{name: `sign`, input: `SIGN(-5), SIGN(0), SIGN(3000000000);`, expectedEval: `-1, 0, 1`},
		{name: `mod`, input: `MOD(7, 3);`, expectedEval: `1`},
		{name: `set`, input: `SET a = 1;`, expectedEval: `1`},
		{name: `set and read`, input: `SET a = 1; SET b = 2; a + b;`, expectedEval: `3`, expectedOut: "3\n"},
		{name: `set case insensitive`, input: `SET Abc = 7; aBC;`, expectedEval: `7`},
		{name: `set reassign`, input: `SET a = 1; SET a = a + 1; a;`, expectedEval: `2`},
		{name: `parse error`, input: `1 + 2 +;`, expectedError: `parse error at ';': expected expression.`},
		{name: `int overflow`, input: `2147483647 + 1;`, expectedError: `at +: arithmetic overflow: INT overflow, x=2147483648`},
		{name: `int multiply overflow`, input: `65536 * 65536;`, expectedError: `at *: arithmetic overflow: INT overflow, x=4294967296`},
		{name: `long overflow`, input: `9223372036854775807 + 1;`, expectedError: `at +: arithmetic overflow: LONG overflow, x=9223372036854775808`},
		{name: `int min negate`, input: `-CAST(-2147483648 AS INT);`, expectedError: `at -: arithmetic overflow: INT overflow, x=2147483648`},
		{name: `int min divided by minus one`, input: `CAST(-2147483648 AS INT) / -1;`, expectedError: `at /: arithmetic overflow`},
		{name: `int min modulus minus one`, input: `CAST(-2147483648 AS INT) % -1;`, expectedEval: `0`},
		{name: `abs of int min`, input: `ABS(CAST(-2147483648 AS INT));`, expectedError: `at ABS: arithmetic overflow`},
		{name: `cast overflow`, input: `CAST(3000000000 AS INT);`, expectedError: `at CAST: arithmetic overflow: INT overflow, x=3000000000`},
		{name: `division by zero`, input: `1 / 0;`, expectedError: `at /: division by zero`},
		{name: `modulus by zero`, input: `1 % 0;`, expectedError: `at %: modulus: division by zero`},
		{name: `undefined variable`, input: `b;`, expectedError: `at b: undefined variable 'b'.`},
		{name: `undefined function`, input: `FOO(1);`, expectedError: `at FOO: can only call builtin functions. 'FOO'.`},
		{name: `arity`, input: `ABS(1, 2);`, expectedError: `at ): expected 1 arguments but got 2.`},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			output, stdout, err := evaluate(context.TODO(), tc.input)
			if tc.expectedError != "" {
				assert.ErrorContains(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedEval, output)
			if tc.expectedOut != "" {
				assert.Equal(t, tc.expectedOut, stdout)
			}
		})
	}
}

func TestInterpretErrorsUnwrap(t *testing.T) {
	t.Parallel()

	_, _, err := evaluate(context.TODO(), `2147483647 + 1;`)
	require.ErrorIs(t, err, sqlerrors.ErrArithmeticOverflow)

	var overflow *sqlerrors.OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, "2147483648", overflow.Value.String())
	assert.Equal(t, value.KindInt, overflow.Kind)

	var runtimeErr *sqlerrors.RuntimeError
	assert.ErrorAs(t, err, &runtimeErr)

	_, _, err = evaluate(context.TODO(), `1 % 0;`)
	assert.ErrorIs(t, err, sqlerrors.ErrDivisionByZero)
	assert.ErrorIs(t, err, sqlerrors.ErrModulusByZero)
}

func TestInterpretShowKinds(t *testing.T) {
	t.Parallel()

	stdout := strings.Builder{}
	eval := interpreter.NewInterpreter(
		interpreter.WithStdout(&stdout),
		interpreter.WithShowKinds(true),
	)

	out, err := eval.Interpret(context.TODO(), parse(t, `1, 3000000000, 1 + CAST(1 AS BIGINT);`))
	require.NoError(t, err)
	assert.Equal(t, `1::INT, 3000000000::LONG, 2::LONG`, out)
	assert.Equal(t, "1::INT, 3000000000::LONG, 2::LONG\n", stdout.String())
}

func TestInterpretSharedGlobals(t *testing.T) {
	t.Parallel()

	globals := interpreter.NewEnvironment()
	stdout := strings.Builder{}
	eval := interpreter.NewInterpreter(
		interpreter.WithStdout(&stdout),
		interpreter.WithGlobals(globals),
	)

	_, err := eval.Interpret(context.TODO(), parse(t, `SET x = 40; SET y = CAST(2 AS BIGINT);`))
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	out, err := eval.Interpret(context.TODO(), parse(t, `x + y;`))
	require.NoError(t, err)
	assert.Equal(t, `42`, out)
	assert.Equal(t, `{x=INT(40), y=LONG(2)}`, globals.String())
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	eval := interpreter.NewInterpreter(interpreter.WithStdout(&strings.Builder{}))
	stmts := parse(t, `1 + 2;`)
	expr := stmts[0].(*parser.StmtExpressions).Expressions[0]

	v, err := eval.Evaluate(context.TODO(), expr)
	require.NoError(t, err)
	assert.Same(t, value.GetInt(3), v)
}

func TestInterpretCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := evaluate(ctx, `1;`)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"ABS", "MOD", "SIGN"}, interpreter.BuiltinNames())
}

func parse(t *testing.T, script string) []parser.Stmt {
	t.Helper()

	tokens, err := scanner.NewScanner(script).Scan()
	require.NoError(t, err)

	stmts, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)

	return stmts
}

func evaluate(ctx context.Context, script string) (string, string, error) {
	stdout := strings.Builder{}

	eval := interpreter.NewInterpreter(
		interpreter.WithStdout(&stdout),
	)
	scan := scanner.NewScanner(script)

	tokens, err := scan.Scan()
	if err != nil {
		return "", stdout.String(), err
	}

	p := parser.NewParser(tokens)
	stmts, err := p.Parse()
	if err != nil {
		return "", stdout.String(), err
	}

	svalue, err := eval.Interpret(ctx, stmts)
	return svalue, stdout.String(), err
}
