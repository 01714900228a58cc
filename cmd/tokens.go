package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/griffinevans/chalice-lang/internal/lang/lexer"
	"github.com/griffinevans/chalice-lang/internal/lang/token"
)

// tokens: dump the token stream of a source file
var TokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		for _, tok := range lexer.NewLexer(f).Tokenize() {
			switch tok.Type {
			case token.TokenNumber:
				fmt.Printf("%d:%d\t%s\t%q\t(%g)\n", tok.Line, tok.Column, tok.Type, tok.Literal, tok.Value)
			default:
				fmt.Printf("%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
			}
		}
		return nil
	},
}
