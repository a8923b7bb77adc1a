package lexer

import (
	"testing"

	"github.com/gingerlang/ginger/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `add(1, 2)
concat("a", "b")
pick(true, false)
half(1.5)
`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.INT, "1"},
		{token.COMMA, ","},
		{token.INT, "2"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "concat"},
		{token.LPAREN, "("},
		{token.STRING, `"a"`},
		{token.COMMA, ","},
		{token.STRING, `"b"`},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "pick"},
		{token.LPAREN, "("},
		{token.TRUE, "true"},
		{token.COMMA, ","},
		{token.FALSE, "false"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "half"},
		{token.LPAREN, "("},
		{token.FLOAT, "1.5"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestLiteralValues(t *testing.T) {
	l := New(`f(42, 2.25, "hi\n", true)`)

	var literals []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		switch tok.Type {
		case token.INT, token.FLOAT, token.STRING, token.TRUE, token.FALSE:
			literals = append(literals, tok)
		}
	}

	if len(literals) != 4 {
		t.Fatalf("expected 4 literal tokens, got %d", len(literals))
	}
	if v := literals[0].Literal.(int64); v != 42 {
		t.Errorf("int literal = %d, want 42", v)
	}
	if v := literals[1].Literal.(float64); v != 2.25 {
		t.Errorf("float literal = %v, want 2.25", v)
	}
	if v := literals[2].Literal.(string); v != "hi\n" {
		t.Errorf("string literal = %q, want %q", v, "hi\n")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "// leading comment\nadd(1, 2) // trailing\n// another\n"
	l := New(input)

	var types []token.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}

	// Comments vanish but their newlines survive for line counting.
	want := []token.TokenType{
		token.NEWLINE,
		token.IDENT, token.LPAREN, token.INT, token.COMMA, token.INT, token.RPAREN,
		token.NEWLINE, token.NEWLINE, token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("add(1, 2)\nsub(3, 4)")

	var subTok token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.IDENT && tok.Lexeme == "sub" {
			subTok = tok
		}
	}

	if subTok.Line != 2 {
		t.Errorf("sub token line = %d, want 2", subTok.Line)
	}
	if subTok.Column != 1 {
		t.Errorf("sub token column = %d, want 1", subTok.Column)
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		input      string
		wantLexeme string
	}{
		{`f(%)`, "%"},
		{`f("abc`, `"abc`},
	}

	for _, tt := range tests {
		l := New(tt.input)
		found := false
		for {
			tok := l.NextToken()
			if tok.Type == token.EOF {
				break
			}
			if tok.Type == token.ILLEGAL {
				found = true
				if tok.Lexeme != tt.wantLexeme {
					t.Errorf("input %q: illegal lexeme = %q, want %q", tt.input, tok.Lexeme, tt.wantLexeme)
				}
				break
			}
		}
		if !found {
			t.Errorf("input %q: expected an ILLEGAL token", tt.input)
		}
	}
}

func TestTokenStreamStopsAtEOF(t *testing.T) {
	ts := NewTokenStream(New("x()"))
	for i := 0; i < 10; i++ {
		tok := ts.Next()
		if i >= 3 && tok.Type != token.EOF {
			t.Fatalf("read %d: expected EOF, got %q", i, tok.Type)
		}
	}
}
