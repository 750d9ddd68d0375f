package eval

import (
	"casm/parser"
	"casm/source"
	"casm/trace"
	"casm/types"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// execDecl installs or overwrites a variable from a literal
func (it *Interpreter) execDecl(lineNum int, stmt *parser.DeclStmt) error {
	val, err := parseLiteral(stmt.Type, stmt.Literal)
	if err != nil {
		return err
	}
	return it.assign(lineNum, stmt.Name, val)
}

// execOut prints the resolved operand followed by a newline
func (it *Interpreter) execOut(stmt *parser.OutStmt) error {
	val, err := Resolve(stmt.Operand, it.store)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.out, val.String())
	return nil
}

// execIn prompts, waits for one input line and stores it converted to the declared type.
// The store is untouched when conversion fails.
func (it *Interpreter) execIn(lineNum int, stmt *parser.InStmt) error {
	fmt.Fprint(it.out, stmt.Prompt)
	if f, ok := it.out.(interface{ Flush() error }); ok {
		f.Flush()
	}

	raw, err := source.ReadLine(it.in)
	if err != nil && (err != io.EOF || raw == "") {
		if err == io.EOF {
			return failf(types.E_EOF, "no input left for %q", stmt.Name)
		}
		return failf(types.E_EOF, "reading input for %q: %v", stmt.Name, err)
	}

	var val types.Value
	switch stmt.Type {
	case types.TYPE_STR:
		val = types.TruncStr(raw)
	case types.TYPE_INT:
		n, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return failf(types.E_CONVERT, "%q is not an integer", raw)
		}
		val = types.NewInt(n)
	case types.TYPE_SML:
		f, ok := types.ParseFlag(raw)
		if !ok {
			return failf(types.E_TYPE, "sml input must be 0 or 1, got %q", raw)
		}
		val = f
	}
	return it.assign(lineNum, stmt.Name, val)
}

// assign writes a variable, mapping a full store to E_CAPACITY
func (it *Interpreter) assign(lineNum int, name string, val types.Value) error {
	if err := it.store.Set(name, val); err != nil {
		if errors.Is(err, ErrStoreFull) {
			return failf(types.E_CAPACITY, "cannot declare %q: %v", name, err)
		}
		return err
	}
	trace.Assign(lineNum, name, val.String())
	return nil
}
