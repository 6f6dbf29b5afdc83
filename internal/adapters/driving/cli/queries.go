package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var queryShowSQL bool

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List the analytical query catalog",
	Args:  cobra.NoArgs,
	RunE:  runQueries,
}

var queryCmd = &cobra.Command{
	Use:   "query <number>",
	Short: "Run a catalog query against the local store",
	Long: `Runs one entry of the query catalog, by its number from 'museo queries',
against the tables written by 'museo collect --save'.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queriesCmd.Flags().BoolVar(&queryShowSQL, "sql", false, "also print each statement")
	rootCmd.AddCommand(queriesCmd)
	rootCmd.AddCommand(queryCmd)
}

func runQueries(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	for i, q := range queryService.List() {
		cmd.Printf("%2d. %s\n", i+1, q.Question)
		if queryShowSQL {
			cmd.Printf("    %s\n", q.SQL)
		}
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid query number %q", args[0])
	}

	q, err := queryService.Find(n)
	if err != nil {
		return err
	}

	cmd.Println(q.Question)
	cmd.Println(q.SQL)
	cmd.Println()

	result, err := queryService.Run(cmd.Context(), q.SQL)
	if err != nil {
		return fmt.Errorf("SQL Error: %w", err)
	}

	printResult(cmd, result)
	return nil
}
