package eval

import (
	"casm/parser"
	"casm/source"
	"casm/trace"
	"casm/types"
)

// conditionalBlock is the state of one open if block.
// inElse is a flag, not a counter: a second else leaves it set.
// A discarded block runs neither phase.
type conditionalBlock struct {
	condition  bool
	inElse     bool
	discarded  bool
	terminated bool
}

// active reports whether lines in the current phase should run
func (b *conditionalBlock) active() bool {
	return !b.discarded && b.condition != b.inElse
}

// runBlock consumes lines from src up to the matching end, then executes the
// lines of the selected phase. Nothing in the block runs when src is
// exhausted before end.
//
// Nesting is not supported. An inner if is reported and skipped, and its
// else/end lines are taken as belonging to this block.
func (it *Interpreter) runBlock(open source.Line, stmt *parser.IfStmt, src *source.Source) {
	block := conditionalBlock{condition: it.evalCondition(open.Num, stmt)}
	trace.Branch(open.Num, block.condition)

	governed, ok := it.scanBlock(open, &block, src)
	if !ok {
		return
	}
	for _, line := range governed {
		it.execGoverned(line)
	}
}

// discardBlock consumes the block of a malformed if line without running any of it
func (it *Interpreter) discardBlock(open source.Line, src *source.Source) {
	block := conditionalBlock{discarded: true}
	it.scanBlock(open, &block, src)
}

// scanBlock reads up to the bare end closing block and returns the lines of
// its active phase. It reports E_NOEND against the if line and returns false
// when src runs out first.
func (it *Interpreter) scanBlock(open source.Line, block *conditionalBlock, src *source.Source) ([]source.Line, bool) {
	var governed []source.Line
	for !block.terminated {
		line, ok := src.Next()
		if !ok {
			it.report(open.Num, failf(types.E_NOEND, "if opened on line %d has no matching end", open.Num))
			return nil, false
		}

		switch {
		case parser.IsComment(line.Text):
		case line.Text == parser.KeywordEnd:
			block.terminated = true
		case line.Text == parser.KeywordElse:
			block.inElse = true
		case !block.active():
			trace.Skip(line.Num, line.Text)
		default:
			governed = append(governed, line)
		}
	}
	return governed, true
}

// execGoverned classifies and runs one line inside the active phase of a block
func (it *Interpreter) execGoverned(line source.Line) {
	stmt, err := parser.Classify(line.Text)
	if err != nil {
		it.report(line.Num, err)
		return
	}
	if stmt == nil {
		return
	}
	if stmt.Kind() == parser.KindIf {
		it.report(line.Num, failf(types.E_SYNTAX, "nested if is not supported"))
		return
	}
	it.exec(line.Num, stmt)
}

// evalCondition evaluates "name == operand" once, when the block opens.
// Any operator other than == is false. Lookup failures are reported and read as false.
func (it *Interpreter) evalCondition(lineNum int, stmt *parser.IfStmt) bool {
	if stmt.Operator != "==" {
		return false
	}

	left, ok := it.store.Get(stmt.Var)
	if !ok {
		it.report(lineNum, failf(types.E_VARNF, "%q is not defined", stmt.Var))
		return false
	}

	right, err := Resolve(stmt.Operand, it.store)
	if err != nil {
		it.report(lineNum, err)
		return false
	}

	return left.Equal(right)
}
