package parser

import "fmt"

// Unparse converts a statement back to canonical source text
func Unparse(stmt Stmt) string {
	switch s := stmt.(type) {
	case *DeclStmt:
		return fmt.Sprintf("%s %s = %s", s.Type, s.Name, s.Literal)
	case *OutStmt:
		return KeywordOut + " " + s.Operand
	case *InStmt:
		return fmt.Sprintf("%s %s %s \"%s\"", KeywordIn, s.Type, s.Name, s.Prompt)
	case *IfStmt:
		return fmt.Sprintf("%s %s %s %s", KeywordIf, s.Var, s.Operator, s.Operand)
	case *ElseStmt:
		return KeywordElse
	case *EndStmt:
		return KeywordEnd
	case *UnknownStmt:
		return s.Keyword + " ..."
	default:
		return "<nil>"
	}
}
