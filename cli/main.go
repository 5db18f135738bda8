package main

import (
	"os"

	"github.com/brio-lang/brio/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
