package main

import (
	"github.com/atheneum-dev/forge/internal/cli"
)

func main() {
	// Execute the root command
	cli.Execute()
}
