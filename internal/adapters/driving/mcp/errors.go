// Package mcp provides an MCP (Model Context Protocol) server adapter for museo.
// It lets AI assistants list and run the analytical query catalog and
// trigger collections.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")

// ErrMissingCollectionService is returned when the collection service is not provided.
var ErrMissingCollectionService = errors.New("mcp: collection service is required")
