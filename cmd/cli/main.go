package main

import (
	"os"

	"power-cost/cmd/cli/cmd"
	"power-cost/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
