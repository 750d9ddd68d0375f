package parser

import (
	"casm/types"
	"strings"
)

// Classify turns one trimmed line into a statement.
// Comments and empty lines yield (nil, nil). Malformed statements yield a *ParseError.
func Classify(line string) (Stmt, error) {
	if line == "" || IsComment(line) {
		return nil, nil
	}

	l := NewLexer(line)
	first := l.NextToken()
	if first.Type != TOKEN_WORD {
		return &UnknownStmt{Keyword: first.Value}, nil
	}

	if typ, ok := types.TypeFromKeyword(first.Value); ok {
		return parseDecl(typ, l)
	}

	switch first.Value {
	case KeywordOut:
		return parseOut(l)
	case KeywordIn:
		return parseIn(l)
	case KeywordIf:
		return parseIf(l)
	case KeywordElse:
		return parseBare(l, KeywordElse, &ElseStmt{})
	case KeywordEnd:
		return parseBare(l, KeywordEnd, &EndStmt{})
	}

	return &UnknownStmt{Keyword: first.Value}, nil
}

// IsComment reports whether a trimmed line is a # comment
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// OpensBlock reports whether a line starts with the if keyword, well formed or not
func OpensBlock(line string) bool {
	first := NewLexer(line).NextToken()
	return first.Type == TOKEN_WORD && first.Value == KeywordIf
}

// checkName rejects variable names longer than a str value may be
func checkName(col int, name string) error {
	if len(name) > types.MaxStrLen {
		return syntaxErrorf(col, "variable name is %d bytes, limit is %d", len(name), types.MaxStrLen)
	}
	return nil
}

// parseDecl parses the remainder of: type name = literal
// The name runs to the first whitespace or '='.
func parseDecl(typ types.TypeCode, l *Lexer) (Stmt, error) {
	rest := l.Rest()
	col := l.position + 1
	if rest == "" {
		return nil, syntaxErrorf(col, "%s declaration requires a name and a value", typ)
	}

	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == '=' || (r < 128 && isSpace(byte(r)))
	})
	if end == 0 {
		return nil, syntaxErrorf(col, "%s declaration is missing a variable name", typ)
	}
	if end < 0 {
		return nil, syntaxErrorf(col, "expected '=' after %q", rest)
	}
	name := rest[:end]
	if err := checkName(col, name); err != nil {
		return nil, err
	}

	after := strings.TrimLeft(rest[end:], " \t\v\f\r\n")
	if !strings.HasPrefix(after, "=") {
		return nil, syntaxErrorf(col+end, "expected '=' after %q", name)
	}

	literal := strings.TrimSpace(after[1:])
	if literal == "" {
		return nil, syntaxErrorf(col+end, "missing value for %q", name)
	}

	return &DeclStmt{Type: typ, Name: name, Literal: literal}, nil
}

// parseOut parses the remainder of: out operand
func parseOut(l *Lexer) (Stmt, error) {
	operand := l.Rest()
	if operand == "" {
		return nil, syntaxErrorf(0, "out requires an operand")
	}
	return &OutStmt{Operand: operand}, nil
}

// parseIn parses the remainder of: in type name "prompt"
func parseIn(l *Lexer) (Stmt, error) {
	typTok := l.NextToken()
	nameTok := l.NextToken()
	promptTok := l.NextToken()

	if typTok.Type == TOKEN_EOF || nameTok.Type == TOKEN_EOF || promptTok.Type == TOKEN_EOF {
		return nil, syntaxErrorf(0, `in requires a type, a name and a "prompt"`)
	}
	if typTok.Type != TOKEN_WORD {
		return nil, syntaxErrorf(typTok.Position.Column, "expected a type, got %s", typTok.Value)
	}
	typ, ok := types.TypeFromKeyword(typTok.Value)
	if !ok {
		return nil, syntaxErrorf(typTok.Position.Column, "unknown type %q", typTok.Value)
	}
	if nameTok.Type != TOKEN_WORD {
		return nil, syntaxErrorf(nameTok.Position.Column, "expected a variable name, got %s", nameTok.Value)
	}
	if err := checkName(nameTok.Position.Column, nameTok.Value); err != nil {
		return nil, err
	}
	switch promptTok.Type {
	case TOKEN_STRING:
	case TOKEN_ILLEGAL:
		return nil, syntaxErrorf(promptTok.Position.Column, "unterminated string")
	default:
		return nil, syntaxErrorf(promptTok.Position.Column, "prompt must be a quoted string, got %s", promptTok.Value)
	}

	if extra := l.NextToken(); extra.Type != TOKEN_EOF {
		return nil, syntaxErrorf(extra.Position.Column, "unexpected %s after prompt", extra.Value)
	}

	return &InStmt{Type: typ, Name: nameTok.Value, Prompt: promptTok.Literal}, nil
}

// parseIf parses the remainder of: if name op operand
func parseIf(l *Lexer) (Stmt, error) {
	toks := l.Tokens()
	last := toks[len(toks)-1]
	if last.Type == TOKEN_ILLEGAL {
		return nil, syntaxErrorf(last.Position.Column, "unterminated string")
	}

	toks = toks[:len(toks)-1] // drop EOF
	if len(toks) != 3 {
		return nil, syntaxErrorf(0, "if requires a variable, an operator and a value, got %d tokens", len(toks))
	}
	if toks[0].Type != TOKEN_WORD {
		return nil, syntaxErrorf(toks[0].Position.Column, "expected a variable name, got %s", toks[0].Value)
	}

	return &IfStmt{Var: toks[0].Value, Operator: toks[1].Value, Operand: toks[2].Value}, nil
}

// parseBare checks that a keyword stands alone on its line
func parseBare(l *Lexer, kw string, stmt Stmt) (Stmt, error) {
	if extra := l.NextToken(); extra.Type != TOKEN_EOF {
		return nil, syntaxErrorf(extra.Position.Column, "unexpected %s after %s", extra.Value, kw)
	}
	return stmt, nil
}
