package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for museo resources.
	uriScheme = "museo://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "queries",
		Name:        "queries",
		Description: "The analytical query catalog",
		MIMEType:    "application/json",
	}, s.handleQueriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "queries/{number}",
		Name:        "query-sql",
		Description: "SQL text of one catalog query",
		MIMEType:    "application/sql",
	}, s.handleQuerySQLResource)
}

// handleQueriesResource returns the catalog as JSON.
func (s *Server) handleQueriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	catalog := s.ports.Query.List()

	infos := make([]QueryOutput, len(catalog))
	for i, q := range catalog {
		infos[i] = QueryOutput{Number: i + 1, Question: q.Question, SQL: q.SQL}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling queries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleQuerySQLResource returns the SQL of a single entry.
func (s *Server) handleQuerySQLResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	n := extractQueryNumber(req.Params.URI)
	if n == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	q, err := s.ports.Query.Find(n)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/sql",
			Text:     q.SQL,
		}},
	}, nil
}

// extractQueryNumber parses n from museo://queries/{n}. Returns 0 when the
// URI does not match.
func extractQueryNumber(uri string) int {
	const prefix = uriScheme + "queries/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || n < 1 {
		return 0
	}
	return n
}
