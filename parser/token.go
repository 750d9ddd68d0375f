package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL // unterminated string literal

	// Literals and words
	TOKEN_STRING // "hello"
	TOKEN_WORD   // any whitespace-delimited run: keywords, names, numbers, operators
)

// Keywords recognised at the start of a line
const (
	KeywordOut  = "out"
	KeywordIn   = "in"
	KeywordIf   = "if"
	KeywordElse = "else"
	KeywordEnd  = "end"
)

// Position represents a position within a single line
type Position struct {
	Column int // 1-based
	Offset int // 0-based byte offset
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string // raw text as written, quotes included
	Literal  string // text between the quotes (for TOKEN_STRING)
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_WORD:
		return "WORD"
	default:
		return "UNKNOWN"
	}
}
