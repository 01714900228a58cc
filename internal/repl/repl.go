// Package repl implements the interactive driver: it prompts, dispatches on
// the current token to parser entry points, reports what was parsed, and
// recovers from failures by discarding one token.
package repl

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/griffinevans/chalice-lang/internal/lang/lexer"
	"github.com/griffinevans/chalice-lang/internal/lang/parser"
	"github.com/griffinevans/chalice-lang/internal/lang/token"
)

const prompt = "ready> "

type REPL struct {
	in    io.Reader
	table *parser.Table
	p     *parser.Parser
	out   io.Writer

	// Verbose prints the AST of each parsed unit in addition to the status line.
	Verbose bool

	promptStyle lipgloss.Style
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
	astStyle    lipgloss.Style
}

// New returns a REPL reading from in and writing to out. Styling degrades to
// plain text when out is not a terminal.
func New(in io.Reader, out io.Writer, table *parser.Table) *REPL {
	renderer := lipgloss.NewRenderer(out)
	return &REPL{
		in:          in,
		table:       table,
		out:         out,
		promptStyle: renderer.NewStyle().Foreground(lipgloss.Color("6")),
		statusStyle: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		errorStyle:  renderer.NewStyle().Foreground(lipgloss.Color("1")),
		astStyle:    renderer.NewStyle().Faint(true),
	}
}

// Run executes the read loop until end of input. Parse failures never abort
// the loop.
func (r *REPL) Run() {
	// Print the first prompt before the parser primes its lookahead, which
	// blocks on interactive input.
	r.printPrompt()
	r.p = parser.NewParserWithTable(lexer.NewLexer(r.in), r.table)

	for {
		switch r.p.CurToken().Type {
		case token.TokenEOF:
			io.WriteString(r.out, "\n")
			return

		case token.TokenSemicolon:
			// Ignore top-level semicolons
			r.p.Advance()

		case token.TokenDef:
			r.handleDefinition()
			r.printPrompt()

		case token.TokenExtern:
			r.handleExtern()
			r.printPrompt()

		default:
			r.handleTopLevelExpression()
			r.printPrompt()
		}
	}
}

func (r *REPL) handleDefinition() {
	fn, err := r.p.ParseDefinition()
	if err != nil {
		r.report(err)
		return
	}

	r.status("Parsed a function definition.")
	if r.Verbose {
		r.ast(fn.String())
	}
}

func (r *REPL) handleExtern() {
	proto, err := r.p.ParseExtern()
	if err != nil {
		r.report(err)
		return
	}

	r.status("Parsed an extern.")
	if r.Verbose {
		r.ast(proto.String())
	}
}

func (r *REPL) handleTopLevelExpression() {
	fn, err := r.p.ParseTopLevel()
	if err != nil {
		r.report(err)
		return
	}

	r.status("Parsed a top-level expression.")
	if r.Verbose {
		r.ast(fn.String())
	}
}

func (r *REPL) printPrompt() {
	io.WriteString(r.out, r.promptStyle.Render(prompt))
}

func (r *REPL) status(msg string) {
	io.WriteString(r.out, r.statusStyle.Render(msg)+"\n")
}

func (r *REPL) ast(s string) {
	io.WriteString(r.out, r.astStyle.Render(s)+"\n")
}

// report prints the failure and discards one token so the next dispatch
// starts fresh.
func (r *REPL) report(err error) {
	io.WriteString(r.out, r.errorStyle.Render(err.Error())+"\n")
	r.p.Advance() // Skip one token for error recovery
}
