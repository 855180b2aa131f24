package domain

import "strconv"

// CellKind discriminates the raw spreadsheet cell variant.
type CellKind int

const (
	CellMissing CellKind = iota
	CellText
	CellNumber
)

// Cell is one raw spreadsheet cell. Source cells arrive untyped from the
// reader; tagging them here means every downstream conversion (text cleanup,
// amount coercion, date resolution) is an explicit, testable function instead
// of implicit stringification.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell returns a Cell holding the given text.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a Cell holding the given numeric value.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// MissingCell returns the blank/absent cell marker.
func MissingCell() Cell {
	return Cell{Kind: CellMissing}
}

// IsMissing reports whether the cell is blank or absent.
func (c Cell) IsMissing() bool {
	return c.Kind == CellMissing
}

// String renders the cell for display and export. Missing cells render as the
// empty string, never as a "nan" placeholder.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}
