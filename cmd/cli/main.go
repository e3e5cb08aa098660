// Package main is the entry point for woodctl, the terminal tool for the
// woodcraft design API and batch generation.
package main

import (
	"os"

	"woodcraft/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
