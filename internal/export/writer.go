// Package export serializes filtered and aggregated statement rows to
// delimited text files readable by common spreadsheet tools.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/analysis"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// totalLabel marks the trailing synthetic total row.
	totalLabel = "합계"
	// allMarker replaces the keyword part of the filename when no keyword
	// was supplied.
	allMarker = "전체"

	// filenameStamp has minute granularity: exports within one run do not
	// overwrite each other and sort chronologically by name.
	filenameStamp = "20060102_1504"

	groupKeyHeader    = "구분"
	groupAmountHeader = "금액"
)

// utf8BOM keeps Korean text readable when the file is opened in Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer writes export files into a fixed directory. The clock is injectable
// for tests.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates a Writer that exports into dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// WriteFilterResult exports the matched rows with their original columns,
// plus a trailing total row: the merchant column reads 합계, the amount
// column holds the exact sum, every other column stays blank. Returns the
// written path.
func (w *Writer) WriteFilterResult(res analysis.FilterResult, columns []string, merchantCol, amountCol string) (string, error) {
	path := filepath.Join(w.dir, w.filename("지출내역", keywordPart(res.Keywords)))

	records := make([][]string, 0, len(res.Rows)+2)
	records = append(records, columns)
	for _, row := range res.Rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			switch col {
			case merchantCol:
				record[i] = row.Merchant
			case amountCol:
				record[i] = row.Amount.String()
			default:
				record[i] = row.Source.Cell(col).String()
			}
		}
		records = append(records, record)
	}
	records = append(records, totalRecord(columns, merchantCol, amountCol, res.Total.String()))

	return path, w.writeCSV(path, records)
}

// WriteGroups exports an aggregation result (category or month) as a two
// column table with a trailing total row. kind becomes the filename prefix,
// e.g. 카테고리별 or 월별.
func (w *Writer) WriteGroups(kind string, groups []analysis.Group) (string, error) {
	path := filepath.Join(w.dir, w.filename(kind, allMarker))

	records := make([][]string, 0, len(groups)+2)
	records = append(records, []string{groupKeyHeader, groupAmountHeader})
	total := decimal.Zero
	for _, g := range groups {
		records = append(records, []string{g.Key, g.Total.String()})
		total = total.Add(g.Total)
	}
	records = append(records, []string{totalLabel, total.String()})

	return path, w.writeCSV(path, records)
}

func (w *Writer) filename(prefix, middle string) string {
	return prefix + "_" + middle + "_" + w.now().Format(filenameStamp) + ".csv"
}

func (w *Writer) writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return &domain.ExportError{Path: path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return &domain.ExportError{Path: path, Err: err}
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		return &domain.ExportError{Path: path, Err: err}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &domain.ExportError{Path: path, Err: err}
	}
	return nil
}

func keywordPart(keywords []string) string {
	if len(keywords) == 0 {
		return allMarker
	}
	return strings.Join(keywords, "+")
}

func totalRecord(columns []string, merchantCol, amountCol, total string) []string {
	record := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case merchantCol:
			record[i] = totalLabel
		case amountCol:
			record[i] = total
		}
	}
	return record
}
