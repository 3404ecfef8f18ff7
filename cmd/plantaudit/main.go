// Package main provides the plantaudit CLI.
package main

import (
	"os"

	"github.com/greenstack-labs/plantaudit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
