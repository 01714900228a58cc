package parser

import (
	"fmt"

	"github.com/griffinevans/chalice-lang/internal/lang/token"
)

// UnexpectedTokenError reports a token that cannot begin a primary
// expression.
type UnexpectedTokenError struct {
	Tok token.Token
}

func (e *UnexpectedTokenError) Error() string {
	if e.Tok.Type == token.TokenEOF {
		return fmt.Sprintf("%d:%d: Syntax Error: unexpected end of input, expected an expression", e.Tok.Line, e.Tok.Column)
	}
	return fmt.Sprintf("%d:%d: Syntax Error: unexpected '%s', expected an expression", e.Tok.Line, e.Tok.Column, e.Tok.Literal)
}

// ExpectedSymbolError reports a required literal token that was not found.
type ExpectedSymbolError struct {
	Tok     token.Token
	Symbol  string // the required literal, e.g. ")"
	Context string // optional clarification, e.g. "in prototype"
}

func (e *ExpectedSymbolError) Error() string {
	msg := fmt.Sprintf("expected '%s'", e.Symbol)
	if e.Context != "" {
		msg += " " + e.Context
	}
	return fmt.Sprintf("%d:%d: Syntax Error: %s", e.Tok.Line, e.Tok.Column, msg)
}

// ExpectedIdentifierError reports a missing function or parameter name.
type ExpectedIdentifierError struct {
	Tok     token.Token
	Context string // e.g. "function name in prototype"
}

func (e *ExpectedIdentifierError) Error() string {
	return fmt.Sprintf("%d:%d: Syntax Error: expected %s", e.Tok.Line, e.Tok.Column, e.Context)
}
