// Package driving defines the interfaces the TUI, CLI and MCP adapters use
// to reach core services. These are the "driving" ports in hexagonal
// architecture terminology.
//
// Implementations live in internal/core/services.
package driving
