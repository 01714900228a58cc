package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/griffinevans/chalice-lang/internal/repl"
)

// repl: interactive parse session on stdin
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parse session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}

		r := repl.New(os.Stdin, os.Stdout, table)
		r.Verbose = verbose
		r.Run()
		return nil
	},
}
