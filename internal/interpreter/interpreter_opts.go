package interpreter

import (
	"io"
	"os"
)

type interpreterOpts struct {
	globals   *environment
	stdout    io.Writer
	showKinds bool
}

var defaultInterpreterOpts = interpreterOpts{
	stdout: os.Stdout,
}

type InterpreterOption func(*interpreterOpts)

func WithGlobals(globals *environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.globals = globals
	}
}

func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

// WithShowKinds renders every value with its kind, e.g. 5::INT.
func WithShowKinds(showKinds bool) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.showKinds = showKinds
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.globals == nil {
		opts.globals = NewEnvironment()
	}

	return &opts
}
