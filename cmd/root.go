package cmd

import (
	"github.com/spf13/cobra"

	"github.com/griffinevans/chalice-lang/internal/config"
	"github.com/griffinevans/chalice-lang/internal/lang/parser"
)

var (
	operatorsFile string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "chalice",
	Short: "Chalice CLI — front end for the Chalice expression language",
	Long: `Chalice is the front end for a minimal expression-oriented language.

Commands:
  repl    Start an interactive parse session
  build   Parse a (.chl) Chalice source file and report each parsed unit
  tokens  Dump the token stream of a source file
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&operatorsFile, "operators", "", "operator precedence file (.toml or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the AST of each parsed unit")

	rootCmd.AddCommand(ReplCmd, BuildCmd, TokensCmd)
}

// loadTable builds the operator table, applying the --operators file when
// one was given.
func loadTable() (*parser.Table, error) {
	table := parser.NewTable()
	if operatorsFile == "" {
		return table, nil
	}

	ops, err := config.LoadOperators(operatorsFile)
	if err != nil {
		return nil, err
	}
	for op, prec := range ops {
		table.Set(op, prec)
	}
	return table, nil
}
