package eval

import (
	"bufio"
	"casm/parser"
	"casm/source"
	"casm/trace"
	"casm/types"
	"io"
	"strings"
)

// Options configures an Interpreter
type Options struct {
	Stdout   io.Writer // program output; prompts are written here too
	Stdin    io.Reader // answers for in statements
	Reporter *Reporter // diagnostics; nil collects silently
	MaxVars  int       // store capacity, 0 = unlimited
}

// Interpreter executes casm programs one line at a time.
// It owns its variable store for its whole lifetime and is not safe for concurrent use.
type Interpreter struct {
	store *Store
	out   io.Writer
	in    *bufio.Reader
	diag  *Reporter
}

// NewInterpreter creates an interpreter with an empty store
func NewInterpreter(opts Options) *Interpreter {
	out := opts.Stdout
	if out == nil {
		out = io.Discard
	}
	in := opts.Stdin
	if in == nil {
		in = strings.NewReader("")
	}
	diag := opts.Reporter
	if diag == nil {
		diag = NewReporter(nil, false)
	}
	return &Interpreter{
		store: NewStore(opts.MaxVars),
		out:   out,
		in:    bufio.NewReader(in),
		diag:  diag,
	}
}

// Store returns the interpreter's variable store
func (it *Interpreter) Store() *Store {
	return it.store
}

// Reporter returns the diagnostic sink
func (it *Interpreter) Reporter() *Reporter {
	return it.diag
}

// Run executes every line of src. Statement errors are reported as diagnostics
// and never stop the run; the returned error is only an I/O failure reading src.
func (it *Interpreter) Run(src *source.Source) error {
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		it.execLine(line, src)
	}
	return src.Err()
}

// execLine classifies and executes one top-level line.
// An if line consumes the rest of its block from src, even when malformed.
func (it *Interpreter) execLine(line source.Line, src *source.Source) {
	stmt, err := parser.Classify(line.Text)
	if err != nil {
		it.report(line.Num, err)
		if parser.OpensBlock(line.Text) {
			it.discardBlock(line, src)
		}
		return
	}
	if stmt == nil {
		return
	}

	switch s := stmt.(type) {
	case *parser.IfStmt:
		trace.Stmt(line.Num, s.Kind().String(), parser.Unparse(s))
		it.runBlock(line, s, src)
	case *parser.ElseStmt:
		it.report(line.Num, failf(types.E_SYNTAX, "else without if"))
	case *parser.EndStmt:
		it.report(line.Num, failf(types.E_SYNTAX, "end without if"))
	default:
		it.exec(line.Num, stmt)
	}
}

// exec runs a simple statement: declaration, output, input or unknown
func (it *Interpreter) exec(lineNum int, stmt parser.Stmt) {
	trace.Stmt(lineNum, stmt.Kind().String(), parser.Unparse(stmt))

	var err error
	switch s := stmt.(type) {
	case *parser.DeclStmt:
		err = it.execDecl(lineNum, s)
	case *parser.OutStmt:
		err = it.execOut(s)
	case *parser.InStmt:
		err = it.execIn(lineNum, s)
	case *parser.UnknownStmt:
		err = failf(types.E_UNKNOWN, "%q", s.Keyword)
	default:
		err = failf(types.E_SYNTAX, "%s is not allowed here", stmt.Kind())
	}
	if err != nil {
		it.report(lineNum, err)
	}
}

// report converts err into a Diagnostic on line lineNum
func (it *Interpreter) report(lineNum int, err error) {
	it.diag.ReportErr(lineNum, err)
}
