package domain

// RawRow maps column names to raw cells for one spreadsheet row. Columns
// absent from the map are treated as missing cells.
type RawRow map[string]Cell

// Cell returns the cell for the named column, or the missing marker when the
// row has no cell there.
func (r RawRow) Cell(column string) Cell {
	if c, ok := r[column]; ok {
		return c
	}
	return MissingCell()
}

// RawTable is the ingested spreadsheet as the reader hands it over: ordered
// column names from the header row and one RawRow per data row, in source
// order. No two columns share a name.
type RawTable struct {
	Columns []string
	Rows    []RawRow
}
