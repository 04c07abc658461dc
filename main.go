package main

import (
	"os"

	"github.com/fitgrid/fitgrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
