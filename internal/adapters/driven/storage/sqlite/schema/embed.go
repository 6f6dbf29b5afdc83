// Package schema embeds the CREATE TABLE statements for the artifact store.
package schema

import "embed"

// FS contains all table definitions embedded at compile time.
// Files are applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
