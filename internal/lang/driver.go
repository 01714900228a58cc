// Package lang orchestrates the front end for file-backed input: it runs the
// same dispatch-and-recover loop as the interactive driver, minus prompts,
// and hands the parsed units to the caller.
package lang

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/griffinevans/chalice-lang/internal/lang/ast"
	"github.com/griffinevans/chalice-lang/internal/lang/lexer"
	"github.com/griffinevans/chalice-lang/internal/lang/parser"
	"github.com/griffinevans/chalice-lang/internal/lang/token"
)

// UnitKind identifies which parser entry point produced a Unit.
type UnitKind int

const (
	UnitDefinition UnitKind = iota
	UnitExtern
	UnitExpression
)

func (k UnitKind) String() string {
	switch k {
	case UnitDefinition:
		return "definition"
	case UnitExtern:
		return "extern"
	case UnitExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Unit is one parsed top-level item. Definitions and bare expressions carry
// a Function; externs carry a Prototype.
type Unit struct {
	Kind  UnitKind
	Func  *ast.Function
	Proto *ast.Prototype
}

func (u Unit) String() string {
	if u.Kind == UnitExtern {
		return u.Proto.String()
	}
	return u.Func.String()
}

// ParseFile parses a .chl source file. Parse failures do not abort the file;
// they are collected as diagnostics and parsing resumes after discarding one
// token.
func ParseFile(path string, table *parser.Table) ([]Unit, []error, error) {
	if err := validateExtension(path); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	units, diags := ParseStream(f, table)
	return units, diags, nil
}

// ParseStream consumes r to EOF, parsing top-level units and recovering from
// failures by discarding exactly one token.
func ParseStream(r io.Reader, table *parser.Table) ([]Unit, []error) {
	p := parser.NewParserWithTable(lexer.NewLexer(r), table)

	var units []Unit
	var diags []error

	for p.CurToken().Type != token.TokenEOF {
		switch p.CurToken().Type {
		case token.TokenSemicolon:
			// Ignore top-level semicolons
			p.Advance()

		case token.TokenDef:
			fn, err := p.ParseDefinition()
			if err != nil {
				diags = append(diags, err)
				p.Advance() // Skip one token for error recovery
				continue
			}
			units = append(units, Unit{Kind: UnitDefinition, Func: fn})

		case token.TokenExtern:
			proto, err := p.ParseExtern()
			if err != nil {
				diags = append(diags, err)
				p.Advance() // Skip one token for error recovery
				continue
			}
			units = append(units, Unit{Kind: UnitExtern, Proto: proto})

		default:
			fn, err := p.ParseTopLevel()
			if err != nil {
				diags = append(diags, err)
				p.Advance() // Skip one token for error recovery
				continue
			}
			units = append(units, Unit{Kind: UnitExpression, Func: fn})
		}
	}

	return units, diags
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".chl" {
		return fmt.Errorf("source must have .chl extension")
	}
	return nil
}
