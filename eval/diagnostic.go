package eval

import (
	"casm/parser"
	"casm/types"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Diagnostic is a non-fatal, statement-local error tied to a program line
type Diagnostic struct {
	Line int
	Code types.ErrorCode
	Msg  string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Code.Message(), d.Msg)
}

// EvalError is a statement failure before a line number has been attached
type EvalError struct {
	Code types.ErrorCode
	Msg  string
}

func (e *EvalError) Error() string {
	return e.Code.Message() + ": " + e.Msg
}

func failf(code types.ErrorCode, format string, args ...interface{}) *EvalError {
	return &EvalError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Reporter writes diagnostics to an error stream distinct from program output
// and keeps every diagnostic for later inspection
type Reporter struct {
	w     io.Writer
	color bool
	mu    sync.Mutex
	diags []Diagnostic
}

// NewReporter creates a reporter writing to w. A nil w only collects.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// Report records d and writes it as one line
func (r *Reporter) Report(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.diags = append(r.diags, d)
	if r.w == nil {
		return
	}
	prefix := "error"
	if r.color {
		prefix = "\x1b[31merror\x1b[0m"
	}
	fmt.Fprintf(r.w, "%s: %s\n", prefix, d.Error())
}

// ReportErr attaches lineNum to a statement error and reports it
func (r *Reporter) ReportErr(lineNum int, err error) {
	var ee *EvalError
	var pe *parser.ParseError
	switch {
	case errors.As(err, &ee):
		r.Report(Diagnostic{Line: lineNum, Code: ee.Code, Msg: ee.Msg})
	case errors.As(err, &pe):
		r.Report(Diagnostic{Line: lineNum, Code: pe.Code, Msg: pe.Error()})
	default:
		r.Report(Diagnostic{Line: lineNum, Code: types.E_SYNTAX, Msg: err.Error()})
	}
}

// Diagnostics returns everything reported so far
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Count returns the number of diagnostics reported
func (r *Reporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diags)
}
