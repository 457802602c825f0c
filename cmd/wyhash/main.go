// Package main provides the entry point for the wyhash CLI tool.
package main

import (
	"fmt"
	"os"

	"go.dw1.io/x/wyhash/cmd/wyhash/commands"
)

func main() {
	rootCmd := commands.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
