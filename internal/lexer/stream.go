package lexer

import "github.com/gingerlang/ginger/internal/token"

// TokenStream drains a lexer up front and serves tokens sequentially.
// Next keeps returning the EOF token once the stream is exhausted.
type TokenStream struct {
	tokens []token.Token
	pos    int
}

func NewTokenStream(l *Lexer) *TokenStream {
	ts := &TokenStream{}
	for {
		tok := l.NextToken()
		ts.tokens = append(ts.tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return ts
}

func (ts *TokenStream) Next() token.Token {
	tok := ts.tokens[ts.pos]
	if ts.pos < len(ts.tokens)-1 {
		ts.pos++
	}
	return tok
}
