package parser

import "testing"

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			"if x == 5",
			[]Token{
				{Type: TOKEN_WORD, Value: "if"},
				{Type: TOKEN_WORD, Value: "x"},
				{Type: TOKEN_WORD, Value: "=="},
				{Type: TOKEN_WORD, Value: "5"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			`in str name "Your name: "`,
			[]Token{
				{Type: TOKEN_WORD, Value: "in"},
				{Type: TOKEN_WORD, Value: "str"},
				{Type: TOKEN_WORD, Value: "name"},
				{Type: TOKEN_STRING, Value: `"Your name: "`, Literal: "Your name: "},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"\tout   -17 ",
			[]Token{
				{Type: TOKEN_WORD, Value: "out"},
				{Type: TOKEN_WORD, Value: "-17"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			`""`,
			[]Token{
				{Type: TOKEN_STRING, Value: `""`, Literal: ""},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.want {
				tok := l.NextToken()
				if tok.Type != want.Type {
					t.Errorf("token[%d] type = %s, want %s", i, tok.Type, want.Type)
				}
				if tok.Value != want.Value {
					t.Errorf("token[%d] value = %s, want %s", i, tok.Value, want.Value)
				}
				if tok.Literal != want.Literal {
					t.Errorf("token[%d] literal = %q, want %q", i, tok.Literal, want.Literal)
				}
			}
		})
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`in str x "oops`)
	toks := l.Tokens()
	last := toks[len(toks)-1]
	if last.Type != TOKEN_ILLEGAL {
		t.Fatalf("last token = %s, want ILLEGAL", last.Type)
	}
	if last.Position.Column != 10 {
		t.Errorf("column = %d, want 10", last.Position.Column)
	}
}

func TestLexerRest(t *testing.T) {
	l := NewLexer(`out   "a  b"  `)
	l.NextToken()
	if got := l.Rest(); got != `"a  b"  ` {
		t.Errorf("Rest() = %q", got)
	}

	l = NewLexer("out")
	l.NextToken()
	if got := l.Rest(); got != "" {
		t.Errorf("Rest() at end = %q, want empty", got)
	}
}

func TestQuoteHelpers(t *testing.T) {
	tests := []struct {
		in     string
		quoted bool
	}{
		{`"abc"`, true},
		{`""`, true},
		{`"`, false},
		{`"abc`, false},
		{`abc"`, false},
		{`abc`, false},
	}
	for _, tt := range tests {
		if got := IsQuoted(tt.in); got != tt.quoted {
			t.Errorf("IsQuoted(%q) = %v, want %v", tt.in, got, tt.quoted)
		}
	}
	if got := Unquote(`"a b"`); got != "a b" {
		t.Errorf("Unquote = %q", got)
	}
}
