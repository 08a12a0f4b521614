package main

import (
	"os"

	"github.com/go-sqlfront/sqlfront/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
