package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/sqlvalue/internal/interpreter"
	"github.com/leonardinius/sqlvalue/internal/parser"
	"github.com/leonardinius/sqlvalue/internal/scanner"
)

// ExitUsage is returned for usage errors and failed scripts.
const ExitUsage = 64

type App struct {
	opts        *appOpts
	err         error
	globals     fmt.Stringer
	interpreter interpreter.Interpreter
}

func NewApp(options ...AppOption) *App {
	opts := newAppOpts(options...)
	globals := interpreter.NewEnvironment()

	return &App{
		opts:    opts,
		globals: globals,
		interpreter: interpreter.NewInterpreter(
			interpreter.WithGlobals(globals),
			interpreter.WithStdout(opts.stdout),
			interpreter.WithShowKinds(opts.config.ShowKinds),
		),
	}
}

func (app *App) reportError(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			app.opts.reporter.ReportError(e)
		}
	} else {
		app.opts.reporter.ReportError(err)
	}
	app.err = err
}

func (app *App) Main(ctx context.Context, args []string) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			app.opts.reporter.ReportPanic(fmt.Errorf("%v", r))
			exitCode = ExitUsage
		}
	}()

	var err error
	switch len(args) {
	case 1:
		err = app.runFile(ctx, args[0])
	case 0:
		err = app.runPrompt(ctx)
	default:
		err = errors.New("Usage: sqlvalue [script]")
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return ExitUsage
	}

	return 0
}

func (app *App) resetError() {
	app.err = nil
}

func (app *App) runPrompt(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      app.opts.config.Prompt,
		HistoryFile: app.opts.config.HistoryFile,
		Stdin:       app.opts.stdin,
		Stdout:      app.opts.stdout,
		Stderr:      app.opts.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}

		if err = app.runLine(ctx, line); err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

// runLine handles REPL meta commands before falling back to run.
func (app *App) runLine(ctx context.Context, line string) error {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return nil
	case trimmed == ".vars":
		fmt.Fprintln(app.opts.stdout, app.globals.String())
		return nil
	case trimmed == ".builtins":
		fmt.Fprintln(app.opts.stdout, strings.Join(interpreter.BuiltinNames(), ", "))
		return nil
	case strings.HasPrefix(trimmed, ".ast "):
		return app.printAst(strings.TrimPrefix(trimmed, ".ast "))
	}

	return app.run(ctx, line)
}

func (app *App) runFile(ctx context.Context, scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.run(ctx, string(bytes))
}

func (app *App) parse(input string) ([]parser.Stmt, error) {
	s := scanner.NewScanner(input)

	tokens, err := s.Scan()
	if err != nil {
		return nil, err
	}

	p := parser.NewParser(tokens)
	return p.Parse()
}

func (app *App) run(ctx context.Context, input string) error {
	statements, err := app.parse(input)
	if err != nil {
		return err
	}

	_, err = app.interpreter.Interpret(ctx, statements)
	return err
}

func (app *App) printAst(input string) error {
	statements, err := app.parse(input)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, parser.NewAstPrinter().PrintStmts(statements))
	return nil
}
