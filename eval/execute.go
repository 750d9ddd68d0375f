package eval

import (
	"bytes"
	"casm/source"
	"io"
	"strings"
)

// Report is the observable result of running a program
type Report struct {
	Output      string
	Diagnostics []Diagnostic
}

// Lines splits Output into printed lines. Prompts from in statements share a
// line with whatever is printed after them.
func (r Report) Lines() []string {
	if r.Output == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(r.Output, "\n"), "\n")
}

// Execute runs programLines against input and returns everything printed
// and every diagnostic reported
func Execute(programLines []string, input io.Reader) Report {
	var out bytes.Buffer
	it := NewInterpreter(Options{Stdout: &out, Stdin: input})
	// in-memory sources cannot fail to read
	_ = it.Run(source.FromLines(programLines))
	return Report{Output: out.String(), Diagnostics: it.Reporter().Diagnostics()}
}
