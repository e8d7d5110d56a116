// Package main provides the entry point for the selectmenu TUI.
//
// Usage:
//
//	selectmenu [flags] [label=value ...]
//
// The value of the chosen option is printed to stdout. Leaving without a
// choice exits with status 130.
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/selectmenu/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if cli.IsCancelled(err) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
