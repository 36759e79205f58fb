package main

import (
	"os"

	"github.com/target/bookshelf-web/cmd/bookshelfctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1) //nolint:forbidigo // CLI exits non-zero on failure.
	}
}
