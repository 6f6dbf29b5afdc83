// Package cli implements the museo command-line interface using cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/museo/internal/core/ports/driving"
	"github.com/custodia-labs/museo/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var verbose bool

// Services injected by main before Execute.
var (
	collectionService driving.CollectionService
	queryService      driving.QueryService
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "museo",
	Short: "Collect and explore Harvard Art Museums catalog data",
	Long: `museo fetches object records from the Harvard Art Museums API,
normalises them into metadata, media and color tables, stores them in a
local SQLite file and runs a catalog of analytical queries over them.

Run without a subcommand to open the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetCollectionService sets the service used by collect and the TUI.
func SetCollectionService(s driving.CollectionService) {
	collectionService = s
}

// SetQueryService sets the service used by queries, query and the TUI.
func SetQueryService(s driving.QueryService) {
	queryService = s
}

// SetSettingsService sets the service used by config and the TUI.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
