package types

// Table is an in-memory catalogue: an ordered column schema plus rows in
// file order. The whole table is materialized at once, there is no
// streaming access.
type Table struct {
	Schema *Schema
	Rows   []Row
}

// NewTable creates an empty table over the given schema. The selection
// pass appends into it; the loader fills it row by row.
func NewTable(schema *Schema) *Table {
	return &Table{Schema: schema, Rows: []Row{}}
}

func (t *Table) AddRow(row Row) {
	t.Rows = append(t.Rows, row)
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}
