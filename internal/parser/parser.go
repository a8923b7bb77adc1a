package parser

import (
	"fmt"
	"strings"

	"github.com/gingerlang/ginger/internal/ast"
	"github.com/gingerlang/ginger/internal/diagnostics"
	"github.com/gingerlang/ginger/internal/pipeline"
	"github.com/gingerlang/ginger/internal/token"
)

// Parser consumes the token stream and produces one CallExpression per
// source line. The grammar is deliberately minimal: arguments are
// literals only: no nested calls, no identifiers, no operators.
// Classification of each literal's kind is purely lexical and never
// consults the catalog; parsing and checking are decoupled phases.
type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// ParseProgram parses the whole code source. It fails fast: the first
// syntax error aborts parsing and no further lines are examined.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		call := p.parseCall()
		if call == nil {
			return program
		}
		program.Calls = append(program.Calls, call)

		// A call owns its line: only a newline or end of input may follow.
		if !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
			p.errorf(diagnostics.ErrP005, p.curToken,
				"unexpected %s after call: one call per line", describe(p.curToken))
			return program
		}
	}

	return program
}

func (p *Parser) parseCall() *ast.CallExpression {
	if !p.curTokenIs(token.IDENT) {
		p.illegalOr(diagnostics.ErrP001, p.curToken,
			fmt.Sprintf("expected function name, got %s", describe(p.curToken)))
		return nil
	}

	call := &ast.CallExpression{Token: p.curToken, Name: p.curToken.Lexeme}

	if !p.peekTokenIs(token.LPAREN) {
		p.errorf(diagnostics.ErrP001, p.peekToken,
			"expected '(' after %s, got %s", call.Name, describe(p.peekToken))
		return nil
	}
	p.nextToken() // onto '('
	p.nextToken() // onto first argument or ')'

	if p.curTokenIs(token.RPAREN) {
		p.nextToken() // past ')'
		return call
	}

	for {
		arg := p.parseLiteral()
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
		p.nextToken()

		switch p.curToken.Type {
		case token.COMMA:
			p.nextToken()
		case token.RPAREN:
			p.nextToken() // past ')'
			return call
		case token.NEWLINE, token.EOF:
			p.errorf(diagnostics.ErrP001, p.curToken,
				"expected ')' to close call to %s", call.Name)
			return nil
		default:
			p.errorf(diagnostics.ErrP001, p.curToken,
				"expected ',' or ')', got %s", describe(p.curToken))
			return nil
		}
	}
}

func (p *Parser) parseLiteral() ast.Literal {
	switch p.curToken.Type {
	case token.INT:
		return &ast.IntegerLiteral{Token: p.curToken, Value: p.curToken.Literal.(int64)}
	case token.FLOAT:
		return &ast.FloatLiteral{Token: p.curToken, Value: p.curToken.Literal.(float64)}
	case token.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
	case token.TRUE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case token.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	case token.IDENT:
		p.errorf(diagnostics.ErrP004, p.curToken,
			"arguments must be literals, got identifier %q", p.curToken.Lexeme)
		return nil
	default:
		p.illegalOr(diagnostics.ErrP001, p.curToken,
			fmt.Sprintf("expected a literal argument, got %s", describe(p.curToken)))
		return nil
	}
}

// illegalOr reports ILLEGAL tokens with their lexical cause (unterminated
// string vs illegal character) and anything else with the given code.
func (p *Parser) illegalOr(code diagnostics.ErrorCode, tok token.Token, msg string) {
	if tok.Type == token.ILLEGAL {
		if strings.HasPrefix(tok.Lexeme, `"`) {
			p.errorf(diagnostics.ErrP002, tok, "unterminated string literal")
			return
		}
		p.errorf(diagnostics.ErrP003, tok, "illegal character %q", tok.Lexeme)
		return
	}
	p.errorf(code, tok, "%s", msg)
}

func (p *Parser) errorf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		code, tok, fmt.Sprintf(format, args...)))
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.NEWLINE:
		return "end of line"
	default:
		return fmt.Sprintf("%q", tok.Lexeme)
	}
}
