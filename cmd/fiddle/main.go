package main

import (
	"os"

	"github.com/bnema/fiddle-runner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
