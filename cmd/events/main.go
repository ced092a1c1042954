// Command events records dated, categorized notes and lists or deletes them.
package main

import (
	"os"

	"github.com/roach88/events/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr, &cli.RootOptions{}))
}
