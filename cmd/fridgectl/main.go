// Package main is the entry point for the fridgectl operator CLI.
package main

import (
	"os"

	"fridge-inventory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
