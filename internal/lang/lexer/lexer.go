package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/griffinevans/chalice-lang/internal/lang/token"
)

// Lexer tokenizes a character stream one token at a time. The stream may be
// interactive; characters are consumed only as tokens are requested.
type Lexer struct {
	r   *bufio.Reader
	ch  byte // current char, 0 at EOF
	eof bool

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func NewLexer(r io.Reader) *Lexer {
	l := &Lexer{r: bufio.NewReader(r), line: 1, column: 0}
	l.readChar()
	return l
}

// NewLexerFromString is a convenience for tokenizing in-memory source.
func NewLexerFromString(input string) *Lexer {
	return NewLexer(strings.NewReader(input))
}

// readChar advances the lexer's cursor and updates the current character.
// Once the stream is exhausted the cursor stays at EOF.
func (l *Lexer) readChar() {
	if l.eof {
		l.ch = 0
		return
	}

	b, err := l.r.ReadByte()
	if err != nil {
		l.ch = 0
		l.eof = true
		return
	}
	l.ch = b

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	switch {
	case isLetter(l.ch):
		ident := l.readIdentifier()
		return token.Token{Type: token.LookupIdent(ident), Literal: ident, Line: startLine, Column: startCol}

	case isDigit(l.ch) || l.ch == '.':
		// A run of digits and dots, converted permissively. Malformed runs
		// like "1.2.3" keep the longest parseable prefix as their value.
		lit := l.readNumber()
		return token.Token{Type: token.TokenNumber, Literal: lit, Value: parseNumber(lit), Line: startLine, Column: startCol}

	case l.ch == '#':
		// Line comment: discard through end of line, then tokenize as if
		// the comment text never existed.
		l.readComment()
		return l.NextToken()

	case l.ch == 0:
		// EOF. Do NOT advance; repeated calls keep returning EOF.
		return token.Token{Type: token.TokenEOF, Literal: "", Line: startLine, Column: startCol}

	case l.ch == '(':
		l.readChar()
		return token.Token{Type: token.TokenLParen, Literal: "(", Line: startLine, Column: startCol}

	case l.ch == ')':
		l.readChar()
		return token.Token{Type: token.TokenRParen, Literal: ")", Line: startLine, Column: startCol}

	case l.ch == ',':
		l.readChar()
		return token.Token{Type: token.TokenComma, Literal: ",", Line: startLine, Column: startCol}

	case l.ch == ';':
		l.readChar()
		return token.Token{Type: token.TokenSemicolon, Literal: ";", Line: startLine, Column: startCol}

	default:
		// Any other character is returned raw; the parser decides whether
		// it is a binary operator via the precedence table.
		ch := l.ch
		l.readChar()
		return token.Token{Type: token.TokenChar, Literal: string(ch), Line: startLine, Column: startCol}
	}
}

// Tokenize reads the remaining input and returns all tokens including the
// trailing EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	var sb strings.Builder
	for isLetter(l.ch) || isDigit(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	return sb.String()
}

func (l *Lexer) readNumber() string {
	var sb strings.Builder
	for isDigit(l.ch) || l.ch == '.' {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	return sb.String()
}

// parseNumber converts a digits-and-dots run to its value. ParseFloat rejects
// runs with more than one dot, so fall back to the longest prefix that parses,
// matching C strtod behavior.
func parseNumber(lit string) float64 {
	for len(lit) > 0 {
		if v, err := strconv.ParseFloat(lit, 64); err == nil {
			return v
		}
		lit = lit[:len(lit)-1]
	}
	return 0
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
