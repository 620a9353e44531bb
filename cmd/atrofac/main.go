// Package main is the entry point for the atrofac CLI.
package main

import (
	"os"

	"github.com/atrofac/atrofac/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
