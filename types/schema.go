package types

// Column is one named, typed catalogue column.
type Column struct {
	Name string   `json:"name"`
	Type DataType `json:"type"`
}

// Schema is the ordered column layout of a catalogue table. Column order
// and datatypes are fixed at creation.
type Schema struct {
	columns []Column
	index   map[string]int
}

func NewSchema(columns ...Column) *Schema {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col.Name] = i
	}
	return &Schema{columns: columns, index: index}
}

// Index returns the position of the named column, or -1 if the schema
// does not carry it.
func (s *Schema) Index(name string) int {
	if idx, found := s.index[name]; found {
		return idx
	}
	return -1
}

func (s *Schema) Columns() []Column {
	return s.columns
}

func (s *Schema) Column(i int) Column {
	return s.columns[i]
}

func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.Name
	}
	return names
}

func (s *Schema) Len() int {
	return len(s.columns)
}

func (s *Schema) Equal(other *Schema) bool {
	if other == nil || len(s.columns) != len(other.columns) {
		return false
	}
	for i, col := range s.columns {
		if other.columns[i] != col {
			return false
		}
	}
	return true
}
