package parser

import (
	"github.com/griffinevans/chalice-lang/internal/lang/ast"
	"github.com/griffinevans/chalice-lang/internal/lang/lexer"
	"github.com/griffinevans/chalice-lang/internal/lang/token"
)

// Parser builds AST nodes from the lexer's token stream using recursive
// descent with precedence climbing for binary expressions. It keeps exactly
// one token of lookahead. Every parse method either returns a value or an
// error; on error, tokens already consumed stay consumed — recovery is the
// caller's concern.
type Parser struct {
	l      *lexer.Lexer
	curTok token.Token
	table  *Table
}

// NewParser returns a parser over l using the built-in operator table.
func NewParser(l *lexer.Lexer) *Parser {
	return NewParserWithTable(l, NewTable())
}

// NewParserWithTable returns a parser over l consulting the given operator
// table at each binary-operator juncture.
func NewParserWithTable(l *lexer.Lexer, table *Table) *Parser {
	p := &Parser{l: l, table: table}
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.l.NextToken()
}

// CurToken returns the lookahead token. Drivers dispatch on it to pick a
// parser entry point.
func (p *Parser) CurToken() token.Token {
	return p.curTok
}

// Advance discards the lookahead token. Drivers call this once after a
// failed parse to resynchronize.
func (p *Parser) Advance() {
	p.nextToken()
}

// curPrecedence returns the precedence of the lookahead token as a binary
// operator, or NotAnOperator.
func (p *Parser) curPrecedence() int {
	op := p.curTok.Operator()
	if op == 0 {
		return NotAnOperator
	}
	return p.table.Precedence(op)
}

// ParseExpression parses a full expression: a primary followed by any number
// of binary-operator tails.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	lhs, err := p.ParsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

// ParsePrimary parses a number literal, an identifier expression (variable
// reference or call), or a parenthesized expression.
func (p *Parser) ParsePrimary() (ast.Expression, error) {
	switch p.curTok.Type {
	case token.TokenNumber:
		return p.parseNumberExpr(), nil
	case token.TokenIdent:
		return p.parseIdentifierExpr()
	case token.TokenLParen:
		return p.parseParenExpr()
	default:
		return nil, &UnexpectedTokenError{Tok: p.curTok}
	}
}

func (p *Parser) parseNumberExpr() ast.Expression {
	expr := &ast.NumberLiteral{Token: p.curTok, Value: p.curTok.Value}
	p.nextToken() // Consume the number
	return expr
}

func (p *Parser) parseParenExpr() (ast.Expression, error) {
	p.nextToken() // Consume '('

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if p.curTok.Type != token.TokenRParen {
		return nil, &ExpectedSymbolError{Tok: p.curTok, Symbol: ")"}
	}
	p.nextToken() // Consume ')'

	return expr, nil
}

// parseIdentifierExpr handles both bare variable references and calls. An
// identifier followed by '(' is a call with comma-separated arguments.
func (p *Parser) parseIdentifierExpr() (ast.Expression, error) {
	identTok := p.curTok
	p.nextToken() // Consume the identifier

	if p.curTok.Type != token.TokenLParen {
		return &ast.Identifier{Token: identTok, Value: identTok.Literal}, nil
	}
	p.nextToken() // Consume '('

	var args []ast.Expression
	if p.curTok.Type != token.TokenRParen {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.curTok.Type == token.TokenRParen {
				break
			}
			if p.curTok.Type != token.TokenComma {
				return nil, &ExpectedSymbolError{Tok: p.curTok, Symbol: ")", Context: "or ',' in argument list"}
			}
			p.nextToken() // Consume ','
		}
	}
	p.nextToken() // Consume ')'

	return &ast.CallExpression{Token: identTok, Callee: identTok.Literal, Arguments: args}, nil
}

// parseBinOpRHS is the precedence-climbing loop. It folds operator/primary
// pairs into lhs for as long as the pending operator's precedence is at
// least minPrec. Equal-precedence operators associate left; a
// higher-precedence operator after the rhs is folded into the rhs first.
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expression) (ast.Expression, error) {
	for {
		tokPrec := p.curPrecedence()
		if tokPrec < minPrec {
			return lhs, nil
		}

		opTok := p.curTok
		p.nextToken() // Consume the operator

		rhs, err := p.ParsePrimary()
		if err != nil {
			return nil, err
		}

		// If the operator after rhs binds tighter, let it take rhs as its
		// lhs before we combine.
		if tokPrec < p.curPrecedence() {
			rhs, err = p.parseBinOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpression{Token: opTok, Operator: opTok.Operator(), Left: lhs, Right: rhs}
	}
}

// ParsePrototype parses a function name followed by a parenthesized list of
// zero or more parameter names. Duplicate parameter names are accepted.
func (p *Parser) ParsePrototype() (*ast.Prototype, error) {
	if p.curTok.Type != token.TokenIdent {
		return nil, &ExpectedIdentifierError{Tok: p.curTok, Context: "function name in prototype"}
	}
	nameTok := p.curTok
	p.nextToken() // Consume the name

	if p.curTok.Type != token.TokenLParen {
		return nil, &ExpectedSymbolError{Tok: p.curTok, Symbol: "(", Context: "in prototype"}
	}
	p.nextToken() // Consume '('

	var params []string
	for p.curTok.Type == token.TokenIdent {
		params = append(params, p.curTok.Literal)
		p.nextToken()
	}

	if p.curTok.Type != token.TokenRParen {
		return nil, &ExpectedSymbolError{Tok: p.curTok, Symbol: ")", Context: "in prototype"}
	}
	p.nextToken() // Consume ')'

	return &ast.Prototype{Token: nameTok, Name: nameTok.Literal, Params: params}, nil
}

// ParseDefinition parses 'def' prototype expression. The lookahead must be
// the def keyword.
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	p.nextToken() // Consume 'def'

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Proto: proto, Body: body}, nil
}

// ParseExtern parses 'extern' prototype. The lookahead must be the extern
// keyword.
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	p.nextToken() // Consume 'extern'
	return p.ParsePrototype()
}

// ParseTopLevel parses a bare expression and wraps it with an anonymous
// prototype so later consumers can treat it like any other function.
func (p *Parser) ParseTopLevel() (*ast.Function, error) {
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	proto := &ast.Prototype{Name: "", Params: nil}
	return &ast.Function{Proto: proto, Body: body}, nil
}
