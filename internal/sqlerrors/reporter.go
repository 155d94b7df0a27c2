package sqlerrors

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora/v4"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w  io.Writer
	au *aurora.Aurora
}

// NewErrReporter returns a reporter writing to w; colored turns on ANSI colours.
func NewErrReporter(w io.Writer, colored bool) *errReporter {
	return &errReporter{w: w, au: aurora.New(aurora.WithColors(colored))}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	fmt.Fprintf(e.w, "%s %v\n", e.au.Red("FATAL").Bold(), err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	fmt.Fprintf(e.w, "%s %v\n", e.au.Red("ERROR"), err)
}

// DefaultReportPanic reports err without colours.
func DefaultReportPanic(w io.Writer, err error) {
	NewErrReporter(w, false).ReportPanic(err)
}

// DefaultReportError reports err without colours.
func DefaultReportError(w io.Writer, err error) {
	NewErrReporter(w, false).ReportError(err)
}

var _ ErrReporter = (*errReporter)(nil)
