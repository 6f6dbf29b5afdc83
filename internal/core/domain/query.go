package domain

// Query is one entry of the canned query catalog.
type Query struct {
	// Question is the natural-language label shown to the user.
	Question string

	// SQL is the parameterless statement executed verbatim.
	SQL string
}

// NullText is how SQL NULL values appear in a QueryResult.
const NullText = "NULL"

// QueryResult is the tabular output of a statement.
// Values are rendered as strings; SQL NULL is rendered as NullText.
type QueryResult struct {
	Columns []string
	Rows    [][]string
}

// RowCount returns the number of rows.
func (r *QueryResult) RowCount() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}
