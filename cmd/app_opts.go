package cmd

import (
	"io"
	"os"

	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
)

type appOpts struct {
	stdin    io.ReadCloser
	stdout   io.Writer
	stderr   io.Writer
	reporter sqlerrors.ErrReporter
	config   Config
}

type AppOption func(*appOpts)

// WithStdin sets the REPL input. Defaults to the terminal.
func WithStdin(stdin io.ReadCloser) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

// WithErrorReporter overrides the reporter built from stderr and Config.Color.
func WithErrorReporter(reporter sqlerrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = reporter
	}
}

func WithConfig(config Config) AppOption {
	return func(opts *appOpts) {
		opts.config = config
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := &appOpts{
		stdout: os.Stdout,
		stderr: os.Stderr,
		config: DefaultConfig(),
	}
	for _, opt := range options {
		opt(opts)
	}

	if opts.reporter == nil {
		opts.reporter = sqlerrors.NewErrReporter(opts.stderr, opts.config.Color)
	}

	return opts
}
