package parser

// readString reads a double-quoted string literal.
// casm strings have no escape sequences: the literal ends at the next quote.
func (l *Lexer) readString(pos Position) Token {
	start := l.position
	l.readChar() // skip opening "

	for !l.atEnd() && l.ch != '"' {
		l.readChar()
	}

	if l.atEnd() {
		return Token{Type: TOKEN_ILLEGAL, Value: l.input[start:], Position: pos}
	}

	l.readChar() // skip closing "
	raw := l.input[start:l.position]
	return Token{
		Type:     TOKEN_STRING,
		Value:    raw,
		Literal:  raw[1 : len(raw)-1],
		Position: pos,
	}
}

// IsQuoted reports whether s is delimited by a leading and trailing double quote
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Unquote strips the delimiting quotes from a quoted literal
func Unquote(s string) string {
	return s[1 : len(s)-1]
}
