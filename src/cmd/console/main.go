package main

import (
	"os"

	"github.com/api-sage/bank-account-console/src/cmd/console/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
