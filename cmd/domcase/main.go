package main

import (
	"os"

	"github.com/dshills/domcase/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
