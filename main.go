package main

import (
	"os"

	"github.com/carson-networks/finance-ledger/internal/cli"
	"github.com/carson-networks/finance-ledger/internal/logging"
)

func main() {
	logger := logging.SetupLogging()
	// command output owns stdout
	logger.SetOutput(os.Stderr)

	if err := cli.NewRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
