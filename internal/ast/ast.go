package ast

import (
	"strconv"
	"strings"

	"github.com/gingerlang/ginger/internal/token"
)

// LiteralKind is the lexical classification of an argument. It is assigned
// by the parser from token shape alone and never consults the catalog;
// the type checker compares kinds against declared type names through the
// host type mapping.
type LiteralKind string

const (
	KindInteger LiteralKind = "integer"
	KindFloat   LiteralKind = "float"
	KindString  LiteralKind = "string"
	KindBoolean LiteralKind = "boolean"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Literal is an argument node carrying its lexical classification.
type Literal interface {
	Node
	Kind() LiteralKind
	// Inspect renders the literal in its source form, suitable for the
	// run report.
	Inspect() string
}

// Program is the root node: an ordered sequence of call expressions,
// one per source line. Order is significant: checking, evaluation and
// reporting all follow it.
type Program struct {
	File  string
	Calls []*CallExpression
}

func (p *Program) TokenLiteral() string {
	if len(p.Calls) > 0 {
		return p.Calls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if len(p.Calls) > 0 {
		return p.Calls[0].GetToken()
	}
	return token.Token{}
}

// CallExpression represents one call line: name(arg1, arg2, ...).
type CallExpression struct {
	Token token.Token // the function name token
	Name  string
	Args  []Literal
}

func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// String renders the call in source form for reporting.
func (ce *CallExpression) String() string {
	var sb strings.Builder
	sb.WriteString(ce.Name)
	sb.WriteString("(")
	for i, arg := range ce.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Inspect())
	}
	sb.WriteString(")")
	return sb.String()
}

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) Kind() LiteralKind     { return KindInteger }
func (il *IntegerLiteral) Inspect() string       { return strconv.FormatInt(il.Value, 10) }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }
func (fl *FloatLiteral) Kind() LiteralKind     { return KindFloat }
func (fl *FloatLiteral) Inspect() string       { return fl.Token.Lexeme }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) Kind() LiteralKind     { return KindString }
func (sl *StringLiteral) Inspect() string       { return strconv.Quote(sl.Value) }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }
func (bl *BooleanLiteral) Kind() LiteralKind     { return KindBoolean }
func (bl *BooleanLiteral) Inspect() string       { return strconv.FormatBool(bl.Value) }
