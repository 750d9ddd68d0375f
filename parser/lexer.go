package parser

// Lexer splits one casm line into whitespace-separated words,
// treating a double-quoted string as a single token
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// skipWhitespace skips over whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.ch) {
		l.readChar()
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := Position{Column: l.position + 1, Offset: l.position}
	if l.atEnd() {
		return Token{Type: TOKEN_EOF, Position: pos}
	}
	if l.ch == '"' {
		return l.readString(pos)
	}

	start := l.position
	for !l.atEnd() && !isSpace(l.ch) {
		l.readChar()
	}
	return Token{Type: TOKEN_WORD, Value: l.input[start:l.position], Position: pos}
}

// Rest returns the unread remainder of the line with leading whitespace removed
func (l *Lexer) Rest() string {
	l.skipWhitespace()
	if l.atEnd() {
		return ""
	}
	return l.input[l.position:]
}

// Tokens lexes the whole line, stopping after EOF or the first ILLEGAL token
func (l *Lexer) Tokens() []Token {
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == TOKEN_EOF || tok.Type == TOKEN_ILLEGAL {
			return toks
		}
	}
}

// isSpace reports ASCII whitespace
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}
