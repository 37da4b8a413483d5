package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/docforge-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docforge-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/docforge-cli/internal/logger"
)

func main() {
	store, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.SetVerbose(store.GetBool("verbose"))

	// The converter is built per invocation so auth only happens when a
	// command actually talks to the Docs API.
	cli.SetServices(nil, store)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
