package tabular

// Document is the columns & rows shape every exporter consumes.
// Each row holds exactly len(Columns) cells; Build does not check it.
type Document struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// Projection returns the display values of the i-th entity, in column order.
type Projection func(i int) []Cell

// Build projects `n` entities into a Document.
func Build(columns []string, n int, project Projection) Document {
	doc := Document{
		Columns: columns,
		Rows:    make([][]Cell, 0, n),
	}
	for i := 0; i < n; i++ {
		doc.Rows = append(doc.Rows, project(i))
	}
	return doc
}

func (doc Document) IsEmpty() bool { return len(doc.Rows) == 0 }

// ColumnLen is the longest character count of column `col`, header included. Blank cells count as 0.
func (doc Document) ColumnLen(col int) int {
	var max int
	if col < len(doc.Columns) {
		max = String(doc.Columns[col]).Len()
	}
	for _, row := range doc.Rows {
		if col < len(row) {
			if l := row[col].Len(); l > max {
				max = l
			}
		}
	}
	return max
}
