package main

import (
	"os"

	"github.com/griffinevans/chalice-lang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
