package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// ListQueriesInput is the input schema for the list_queries tool.
type ListQueriesInput struct{}

// ListQueriesOutput is the output schema for the list_queries tool.
type ListQueriesOutput struct {
	Queries []QueryOutput `json:"queries"`
	Count   int           `json:"count"`
}

// QueryOutput describes one catalog entry.
type QueryOutput struct {
	Number   int    `json:"number"`
	Question string `json:"question"`
	SQL      string `json:"sql"`
}

// RunQueryInput is the input schema for the run_query tool.
type RunQueryInput struct {
	Number int `json:"number" jsonschema:"1-based position of the query in the catalog"`
}

// RunQueryOutput is the output schema for the run_query tool.
type RunQueryOutput struct {
	Question string     `json:"question"`
	SQL      string     `json:"sql"`
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
}

// CollectInput is the input schema for the collect tool.
type CollectInput struct {
	Classification string `json:"classification" jsonschema:"one of Coins, Paintings, Drawings, Jewelry, Sculpture"`
	Limit          int    `json:"limit,omitempty" jsonschema:"number of records to fetch"`
	Save           bool   `json:"save,omitempty" jsonschema:"replace the stored tables with the fetched batch"`
}

// CollectOutput is the output schema for the collect tool.
type CollectOutput struct {
	BatchID        string `json:"batch_id"`
	Classification string `json:"classification"`
	Outcome        string `json:"outcome"`
	Metadata       int    `json:"metadata"`
	Media          int    `json:"media"`
	Colors         int    `json:"colors"`
	FetchError     string `json:"fetch_error,omitempty"`
	Saved          bool   `json:"saved"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_queries",
		Description: "List the analytical questions that can be asked of the stored catalog data",
	}, s.handleListQueries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_query",
		Description: "Run a catalog query by number against the local SQLite store",
	}, s.handleRunQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "collect",
		Description: "Fetch artifacts of one classification from the Harvard Art Museums catalog",
	}, s.handleCollect)
}

func (s *Server) handleListQueries(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListQueriesInput,
) (*mcp.CallToolResult, ListQueriesOutput, error) {
	catalog := s.ports.Query.List()

	output := ListQueriesOutput{
		Queries: make([]QueryOutput, len(catalog)),
		Count:   len(catalog),
	}
	for i, q := range catalog {
		output.Queries[i] = QueryOutput{Number: i + 1, Question: q.Question, SQL: q.SQL}
	}
	return nil, output, nil
}

func (s *Server) handleRunQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunQueryInput,
) (*mcp.CallToolResult, RunQueryOutput, error) {
	q, err := s.ports.Query.Find(input.Number)
	if err != nil {
		return nil, RunQueryOutput{}, fmt.Errorf("query %d: %w", input.Number, err)
	}

	result, err := s.ports.Query.Run(ctx, q.SQL)
	if err != nil {
		return nil, RunQueryOutput{}, err
	}

	return nil, RunQueryOutput{
		Question: q.Question,
		SQL:      q.SQL,
		Columns:  result.Columns,
		Rows:     result.Rows,
		RowCount: result.RowCount(),
	}, nil
}

func (s *Server) handleCollect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CollectInput,
) (*mcp.CallToolResult, CollectOutput, error) {
	c, err := domain.ParseClassification(input.Classification)
	if err != nil {
		return nil, CollectOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.ports.DefaultLimit
	}
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
	}

	batch, err := s.ports.Collection.Collect(ctx, c.String(), limit, nil)
	if err != nil {
		return nil, CollectOutput{}, err
	}

	output := CollectOutput{
		BatchID:        batch.BatchID,
		Classification: batch.Classification,
		Outcome:        batch.Outcome.String(),
		Metadata:       len(batch.Metadata),
		Media:          len(batch.Media),
		Colors:         len(batch.Colors),
	}
	if batch.FetchErr != nil {
		output.FetchError = batch.FetchErr.Error()
	}

	if input.Save {
		if err := s.ports.Collection.Persist(ctx, batch); err != nil {
			return nil, output, fmt.Errorf("saving batch: %w", err)
		}
		output.Saved = true
	}
	return nil, output, nil
}
