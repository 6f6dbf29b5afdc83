// Package querycatalog holds the fixed list of analytical queries shipped
// with museo. The list is static data embedded from queries.toml.
package querycatalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/museo/internal/core/domain"
)

//go:embed queries.toml
var embedded []byte

// file mirrors the layout of queries.toml.
type file struct {
	Query []entry `toml:"query"`
}

type entry struct {
	Question string `toml:"question"`
	SQL      string `toml:"sql"`
}

// Default returns the embedded catalog. It panics if the embedded file is
// malformed, which can only happen at build time.
func Default() []domain.Query {
	queries, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("querycatalog: embedded catalog: %v", err))
	}
	return queries
}

// Parse decodes a catalog document. Every entry needs a question and a
// statement.
func Parse(data []byte) ([]domain.Query, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	queries := make([]domain.Query, 0, len(f.Query))
	for i, e := range f.Query {
		q := domain.Query{
			Question: strings.TrimSpace(e.Question),
			SQL:      strings.TrimSpace(e.SQL),
		}
		if q.Question == "" || q.SQL == "" {
			return nil, fmt.Errorf("%w: catalog entry %d is incomplete", domain.ErrInvalidInput, i+1)
		}
		queries = append(queries, q)
	}
	return queries, nil
}
