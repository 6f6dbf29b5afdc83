package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
	Long: `View and change museo settings stored in ~/.museo/config.toml.

Environment variables MUSEO_API_KEY, MUSEO_API_URL and MUSEO_DATA_DIR
override the file values.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	dataDir := s.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default ~/.museo/data)"
	}
	rate := "unpaced"
	if s.Fetch.RequestsPerSecond > 0 {
		rate = fmt.Sprintf("%g/s", s.Fetch.RequestsPerSecond)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[API]")
	cmd.Printf("  Key: %s\n", s.API.MaskedKey())
	cmd.Printf("  Base URL: %s\n", s.API.BaseURL)
	cmd.Println()
	cmd.Println("[Fetch]")
	cmd.Printf("  Page size: %d\n", s.Fetch.PageSize)
	cmd.Printf("  Limit: %d\n", s.Fetch.Limit)
	cmd.Printf("  Pacing: %s\n", rate)
	cmd.Println()
	cmd.Println("[Storage]")
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Printf("  File: %s\n", s.Storage.FileName)
	cmd.Println()
	cmd.Printf("Config file: %s\n", settingsService.Path())

	if s.API.Key == "" {
		cmd.Println("Warning: no API key set. Run 'museo config set api.key <key>' or export MUSEO_API_KEY.")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w (valid keys: %v)", key, err, settingsService.Keys())
	}

	cmd.Printf("Set %s\n", key)
	return nil
}
