// Package main provides the CLI for the interim date parser.
package main

import "github.com/conradludgate/interim/internal/cli"

func main() {
	cli.Execute()
}
