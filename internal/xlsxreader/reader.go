// Package xlsxreader adapts .xlsx statement files into the raw table the
// analysis pipeline consumes. Only the layout the card company exports is
// supported: first row decorative, second row column headers, data below.
package xlsxreader

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Read loads the first sheet of the workbook at path. Failures wrap into
// LoadError so the session can keep its previous table.
func Read(path string) (*domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.LoadError{Path: path, Err: errors.New("workbook has no sheets")}
	}

	// RawCellValue keeps date cells as their serial numbers instead of a
	// display-formatted string, which is what DateResolver expects.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}
	if len(rows) < 2 {
		return nil, &domain.LoadError{Path: path, Err: errors.New("missing header row (expected headers on row 2)")}
	}

	return buildTable(rows), nil
}

// buildTable uses row 2 as the header row and skips the decorative first
// row. Blank header cells and repeated header names are dropped so column
// names stay unique.
func buildTable(rows [][]string) *domain.RawTable {
	headerRow := rows[1]

	var columns []string
	index := make([]int, 0, len(headerRow))
	seen := make(map[string]bool)
	for i, h := range headerRow {
		name := strings.TrimSpace(h)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		columns = append(columns, name)
		index = append(index, i)
	}

	table := &domain.RawTable{Columns: columns}
	for _, raw := range rows[2:] {
		row := make(domain.RawRow, len(columns))
		for j, col := range columns {
			i := index[j]
			if i < len(raw) {
				row[col] = CellFromString(raw[i])
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// CellFromString tags a raw cell value: empty is missing, a parsable float
// is a number (date serials arrive this way), anything else is text.
func CellFromString(s string) domain.Cell {
	if strings.TrimSpace(s) == "" {
		return domain.MissingCell()
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return domain.NumberCell(f)
	}
	return domain.TextCell(s)
}
