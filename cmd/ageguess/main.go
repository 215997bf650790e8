// Package main is the entry point for the ageguess CLI.
package main

import (
	"os"

	"github.com/f3rmion/ageguess/cmd/ageguess/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
