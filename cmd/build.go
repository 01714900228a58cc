package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/griffinevans/chalice-lang/internal/lang"
)

// build: parse a source file and report every top-level unit
var BuildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Parse a .chl source file and report each parsed unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}

		units, diags, err := lang.ParseFile(args[0], table)
		if err != nil {
			return err
		}

		for _, u := range units {
			if verbose {
				fmt.Printf("%s: %s\n", u.Kind, u)
			} else {
				fmt.Printf("Parsed a %s.\n", u.Kind)
			}
		}

		if len(diags) > 0 {
			for _, d := range diags {
				fmt.Fprintln(os.Stderr, d)
			}
			return fmt.Errorf("%d parse error(s) in %s", len(diags), args[0])
		}
		return nil
	},
}
