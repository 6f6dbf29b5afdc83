package domain

import "strconv"

// Column names of the three relations, in storage order.
var (
	MetadataColumns = []string{
		"objectid", "title", "culture", "period", "technique", "dated",
		"department", "accessionyear", "rank", "colorcount", "mediacount", "classification",
	}
	MediaColumns  = []string{"objectid", "imageurl", "rank"}
	ColorsColumns = []string{"objectid", "color", "hue", "percent"}
)

// Preview renders up to n rows of the named relation in the same text form
// used for query results. n <= 0 renders every row.
func (r Relations) Preview(table string, n int) (*QueryResult, error) {
	switch table {
	case TableMetadata:
		rows := make([][]string, 0, bounded(len(r.Metadata), n))
		for i := 0; i < bounded(len(r.Metadata), n); i++ {
			m := r.Metadata[i]
			rows = append(rows, []string{
				intText(m.ObjectID), strText(m.Title), strText(m.Culture), strText(m.Period),
				strText(m.Technique), strText(m.Dated), strText(m.Department),
				intText(m.AccessionYear), intText(m.Rank), intText(m.ColorCount), intText(m.MediaCount),
				m.Classification,
			})
		}
		return &QueryResult{Columns: MetadataColumns, Rows: rows}, nil
	case TableMedia:
		rows := make([][]string, 0, bounded(len(r.Media), n))
		for i := 0; i < bounded(len(r.Media), n); i++ {
			m := r.Media[i]
			rows = append(rows, []string{intText(m.ObjectID), strText(m.ImageURL), intText(m.Rank)})
		}
		return &QueryResult{Columns: MediaColumns, Rows: rows}, nil
	case TableColors:
		rows := make([][]string, 0, bounded(len(r.Colors), n))
		for i := 0; i < bounded(len(r.Colors), n); i++ {
			c := r.Colors[i]
			rows = append(rows, []string{intText(c.ObjectID), strText(c.Color), strText(c.Hue), floatText(c.Percent)})
		}
		return &QueryResult{Columns: ColorsColumns, Rows: rows}, nil
	default:
		return nil, ErrNotFound
	}
}

func bounded(total, n int) int {
	if n <= 0 || n > total {
		return total
	}
	return n
}

func strText(p *string) string {
	if p == nil {
		return NullText
	}
	return *p
}

func intText(p *int64) string {
	if p == nil {
		return NullText
	}
	return strconv.FormatInt(*p, 10)
}

func floatText(p *float64) string {
	if p == nil {
		return NullText
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
