package main

import (
	"os"

	"github.com/techverse/aiverse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
