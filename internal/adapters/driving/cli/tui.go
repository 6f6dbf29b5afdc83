package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui"
	"github.com/custodia-labs/museo/internal/logger"
)

// tuiLogFile receives debug logs while the dashboard owns the terminal.
const tuiLogFile = "museo-tui.log"

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard collects a classification from the catalog with a progress
bar, previews the normalised tables, saves them to SQLite and runs the
query catalog.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Run
  s        - Save batch (Collect)
  p        - Preview batch (Collect)
  Tab      - Next table (Preview)
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	ports := tui.NewPorts(collectionService, queryService, settingsService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs keeps log lines off the alt screen. Verbose output goes to a
// file in the temp directory instead.
func redirectLogs() (func(), error) {
	if !verbose {
		prev := logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(prev) }, nil
	}

	path := filepath.Join(os.TempDir(), tuiLogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening TUI log: %w", err)
	}
	prev := logger.SetOutput(f)
	return func() {
		logger.SetOutput(prev)
		f.Close() //nolint:errcheck
	}, nil
}
