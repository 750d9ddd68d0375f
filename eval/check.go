package eval

import (
	"casm/parser"
	"casm/source"
	"casm/types"
)

// Check classifies every line of src without executing anything.
// It reports malformed statements, unknown commands, ill-typed declaration
// literals and if/else/end structure the way Run would see it: a nested if is
// an error and the next end closes the outer block. A malformed if still opens
// a block.
//
// Check does not evaluate conditions, so it reports every line of a block
// while Run only reports the phase that executes. A nested if in a branch Run
// never takes is flagged here and silent there.
func Check(src *source.Source, diag *Reporter) error {
	openLine := 0 // line of the open if, 0 when none

	for {
		line, ok := src.Next()
		if !ok {
			break
		}

		stmt, err := parser.Classify(line.Text)
		if err != nil {
			diag.ReportErr(line.Num, err)
			if openLine == 0 && parser.OpensBlock(line.Text) {
				openLine = line.Num
			}
			continue
		}
		if stmt == nil {
			continue
		}

		switch s := stmt.(type) {
		case *parser.IfStmt:
			if openLine != 0 {
				diag.ReportErr(line.Num, failf(types.E_SYNTAX, "nested if is not supported"))
				continue
			}
			openLine = line.Num
		case *parser.ElseStmt:
			if openLine == 0 {
				diag.ReportErr(line.Num, failf(types.E_SYNTAX, "else without if"))
			}
		case *parser.EndStmt:
			if openLine == 0 {
				diag.ReportErr(line.Num, failf(types.E_SYNTAX, "end without if"))
			}
			openLine = 0
		case *parser.DeclStmt:
			if _, err := parseLiteral(s.Type, s.Literal); err != nil {
				diag.ReportErr(line.Num, err)
			}
		case *parser.UnknownStmt:
			diag.ReportErr(line.Num, failf(types.E_UNKNOWN, "%q", s.Keyword))
		}
	}

	if openLine != 0 {
		diag.ReportErr(openLine, failf(types.E_NOEND, "if opened on line %d has no matching end", openLine))
	}
	return src.Err()
}
