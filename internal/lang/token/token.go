package token

type TokenType string

const (
	// Keywords
	TokenDef    TokenType = "DEF"    // def
	TokenExtern TokenType = "EXTERN" // extern

	// Literals & Identifiers
	TokenIdent  TokenType = "IDENT"  // Identifier (e.g. variable or function name)
	TokenNumber TokenType = "NUMBER" // 4.2

	// Structural single-character tokens
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenComma     TokenType = "COMMA"     // ,
	TokenSemicolon TokenType = "SEMICOLON" // ;

	// Any other single character (operators like +, -, *, <, ...)
	TokenChar TokenType = "CHAR"

	// Special
	TokenEOF TokenType = "EOF"
)

type Token struct {
	Type    TokenType
	Literal string
	Value   float64 // Parsed value, set only for TokenNumber
	Line    int
	Column  int
}

// Operator returns the token's character for precedence lookup, or 0 if the
// token is not a single raw character.
func (t Token) Operator() byte {
	if t.Type != TokenChar || len(t.Literal) != 1 {
		return 0
	}
	return t.Literal[0]
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]TokenType{
	"def":    TokenDef,
	"extern": TokenExtern,
}

// LookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or TokenIdent if it's not a keyword.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return TokenIdent
}
