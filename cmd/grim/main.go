// Package main is the entry point for the grim CLI tool.
package main

import (
	"os"

	"github.com/jdhollis/grimoire/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
