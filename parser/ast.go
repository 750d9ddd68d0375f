package parser

import "casm/types"

// Stmt is one classified casm line. The set of implementations is closed.
type Stmt interface {
	Kind() StmtKind
	stmtNode()
}

// StmtKind names a statement form
type StmtKind int

const (
	KindDecl StmtKind = iota
	KindOut
	KindIn
	KindIf
	KindElse
	KindEnd
	KindUnknown
)

// String returns the short name used by tracing filters
func (k StmtKind) String() string {
	switch k {
	case KindDecl:
		return "decl"
	case KindOut:
		return "out"
	case KindIn:
		return "in"
	case KindIf:
		return "if"
	case KindElse:
		return "else"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// DeclStmt represents: int|str|sml name = literal
type DeclStmt struct {
	Type    types.TypeCode
	Name    string
	Literal string // unconverted right-hand side
}

func (s *DeclStmt) Kind() StmtKind { return KindDecl }
func (s *DeclStmt) stmtNode()      {}

// OutStmt represents: out operand
type OutStmt struct {
	Operand string // unresolved
}

func (s *OutStmt) Kind() StmtKind { return KindOut }
func (s *OutStmt) stmtNode()      {}

// InStmt represents: in type name "prompt"
type InStmt struct {
	Type   types.TypeCode
	Name   string
	Prompt string // without quotes
}

func (s *InStmt) Kind() StmtKind { return KindIn }
func (s *InStmt) stmtNode()      {}

// IfStmt opens a conditional block: if name op operand
type IfStmt struct {
	Var      string
	Operator string // only "==" can ever be true
	Operand  string // unresolved, quotes kept
}

func (s *IfStmt) Kind() StmtKind { return KindIf }
func (s *IfStmt) stmtNode()      {}

// ElseStmt is a bare else line
type ElseStmt struct{}

func (s *ElseStmt) Kind() StmtKind { return KindElse }
func (s *ElseStmt) stmtNode()      {}

// EndStmt is a bare end line
type EndStmt struct{}

func (s *EndStmt) Kind() StmtKind { return KindEnd }
func (s *EndStmt) stmtNode()      {}

// UnknownStmt is any line whose leading keyword is not recognised
type UnknownStmt struct {
	Keyword string
}

func (s *UnknownStmt) Kind() StmtKind { return KindUnknown }
func (s *UnknownStmt) stmtNode()      {}
