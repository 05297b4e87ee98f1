package main

import (
	"os"

	"github.com/rubytools/ralint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
