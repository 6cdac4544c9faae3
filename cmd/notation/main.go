// Package main is the entry point for the notation CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/notation/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
