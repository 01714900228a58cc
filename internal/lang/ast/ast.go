package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/griffinevans/chalice-lang/internal/lang/token"
)

// Expression is the closed set of expression nodes the parser produces. Every
// node exclusively owns its children; nothing is shared or mutated after
// construction.
type Expression interface {
	expressionNode()
	String() string
	GetToken() token.Token
}

// NumberLiteral -> 4.2
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) expressionNode()       {}
func (nl *NumberLiteral) GetToken() token.Token { return nl.Token }
func (nl *NumberLiteral) String() string {
	return strconv.FormatFloat(nl.Value, 'g', -1, 64)
}

// Identifier -> a bare variable reference
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) String() string        { return i.Value }

// BinaryExpression -> left <op> right
type BinaryExpression struct {
	Token    token.Token // The operator token
	Operator byte        // '+', '*', etc.
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) expressionNode()       {}
func (be *BinaryExpression) GetToken() token.Token { return be.Token }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + string(be.Operator) + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

// CallExpression -> callee(arg1, arg2)
type CallExpression struct {
	Token     token.Token // The callee identifier token
	Callee    string
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) GetToken() token.Token { return ce.Token }
func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}

	var out bytes.Buffer
	out.WriteString(ce.Callee)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// Prototype captures a function's name and parameter names, independent of
// its body. Parameter order is declaration order; names are not checked for
// uniqueness.
type Prototype struct {
	Token  token.Token // The function name token
	Name   string
	Params []string
}

// IsAnonymous reports whether this prototype wraps a bare top-level
// expression rather than a named definition.
func (p *Prototype) IsAnonymous() bool { return p.Name == "" }

func (p *Prototype) String() string {
	var out bytes.Buffer
	out.WriteString(p.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(p.Params, " "))
	out.WriteString(")")
	return out.String()
}

// Function -> a prototype plus its body expression. Bare top-level
// expressions are wrapped with an anonymous prototype for uniform handling.
type Function struct {
	Proto *Prototype
	Body  Expression
}

func (f *Function) String() string {
	var out bytes.Buffer
	if !f.Proto.IsAnonymous() {
		out.WriteString("def ")
		out.WriteString(f.Proto.String())
		out.WriteString(" ")
	}
	out.WriteString(f.Body.String())
	return out.String()
}
