// Package main is the entry point for the dingcad CLI.
//
// Usage:
//
//	dingcad [flags] <command> [args]
//
// Commands:
//
//	eval     - Evaluate a scene script and report the result
//	lib      - Manage the local script module library (add, list, remove)
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/yacineMTB/dingcad-sub001/cmd/dingcad/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
