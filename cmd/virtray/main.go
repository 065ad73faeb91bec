// Package main is the entry point for the virtray CLI.
package main

import (
	"os"

	"github.com/virtray/virtray/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
