package main

import (
	"os"

	"github.com/preston-bernstein/standings-service/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(cli.ExitError)
	}
}
