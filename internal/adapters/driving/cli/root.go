package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docforge-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	// converterService, when set, is used by every command that converts.
	// Left nil in normal operation so convert can build the right writer
	// (real or in-memory) per invocation.
	converterService driving.ConverterService

	// configStore backs the config command and supplies defaults
	// (credentials file, rate limits) to convert.
	configStore driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "Convert markdown into styled Google Docs",
	Long: `docforge converts a constrained markdown dialect (headings 1-3,
bullets, checkboxes, plain paragraphs) into a new, fully styled
Google Doc and prints its URL.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the services used by the commands.
// Pass a nil converter to let convert build one per invocation.
func SetServices(converter driving.ConverterService, store driven.ConfigStore) {
	converterService = converter
	configStore = store
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
