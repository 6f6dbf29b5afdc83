package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/museo/internal/core/domain"
)

var (
	collectLimit   int
	collectSave    bool
	collectPreview int
)

var collectCmd = &cobra.Command{
	Use:   "collect <classification>",
	Short: "Fetch catalog records for a classification",
	Long: `Fetches object records for one classification page by page until the
limit is reached or the catalog runs out, then normalises them into the
metadata, media and color tables.

Classifications: Coins, Paintings, Drawings, Jewelry, Sculpture.

Use --save to replace the tables in the local SQLite store with the
collected batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().IntVarP(&collectLimit, "limit", "n", 0, "maximum records to fetch (0 = configured fetch.limit)")
	collectCmd.Flags().BoolVar(&collectSave, "save", false, "persist the batch to the SQLite store")
	collectCmd.Flags().IntVar(&collectPreview, "preview", 0, "print the first N rows of each table")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	classification, err := domain.ParseClassification(args[0])
	if err != nil {
		return err
	}

	limit := collectLimit
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
		if settingsService != nil {
			if s, err := settingsService.Get(); err == nil {
				limit = s.Fetch.Limit
			}
		}
	}

	interactive := isTerminal(cmd)
	progress := func(p domain.FetchProgress) {
		if interactive {
			cmd.Printf("\rFetching '%s': %d / %d records", p.Classification, p.Fetched, p.Limit)
		}
	}

	batch, err := collectionService.Collect(cmd.Context(), classification.String(), limit, progress)
	if err != nil {
		return fmt.Errorf("collect failed: %w", err)
	}
	if interactive {
		cmd.Println()
	}

	cmd.Printf("Completed fetching '%s' (%d records)\n", batch.Classification, len(batch.Metadata))
	if batch.Partial() {
		cmd.Printf("Warning: fetch stopped early after %d pages: %v\n", batch.Pages, batch.FetchErr)
		if batch.KeyProblem() {
			cmd.Printf("Hint: %s\n", domain.KeyHint)
		}
	}
	cmd.Printf("%s data collected successfully! Total records: %d\n", batch.Classification, len(batch.Metadata))
	cmd.Printf("  Metadata: %d  Media: %d  Colors: %d\n", len(batch.Metadata), len(batch.Media), len(batch.Colors))

	if collectPreview > 0 {
		for _, table := range []string{domain.TableMetadata, domain.TableMedia, domain.TableColors} {
			preview, err := batch.Preview(table, collectPreview)
			if err != nil {
				return err
			}
			cmd.Printf("\n[%s]\n", table)
			printResult(cmd, preview)
		}
	}

	if !collectSave {
		return nil
	}

	if err := collectionService.Persist(cmd.Context(), batch); err != nil {
		if errors.Is(err, domain.ErrNoData) {
			cmd.Println("Nothing to save: please collect data first.")
			return nil
		}
		return fmt.Errorf("save failed: %w", err)
	}
	cmd.Println("Data inserted to SQLite successfully!")
	return nil
}

// isTerminal reports whether command output goes to a TTY.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
