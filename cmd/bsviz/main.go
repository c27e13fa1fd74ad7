package main

import (
	"os"

	"github.com/rcliao/bsearch-viz/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
