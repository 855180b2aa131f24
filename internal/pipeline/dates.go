package pipeline

import (
	"strings"
	"time"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
)

// serialEpoch is the spreadsheet serial-date epoch: day 1 is 1899-12-31, so
// offsets count from 1899-12-30.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dottedDateLayout is the two-digit-year dotted format card statements use
// after suffix stripping, e.g. "23.06.18". Month and day are unpadded in the
// layout so "23.1.5" parses too.
const dottedDateLayout = "06.1.2"

// DateColumns returns the columns whose name contains one of the date
// markers, in table column order.
func DateColumns(columns, markers []string) []string {
	var out []string
	for _, col := range columns {
		for _, m := range markers {
			if m != "" && strings.Contains(col, m) {
				out = append(out, col)
				break
			}
		}
	}
	return out
}

// ResolveDate picks the row's canonical transaction date: the leftmost
// candidate column whose cell parses wins. Rows where nothing parses get no
// date, which is not an error. Different rows of one table may resolve from
// different columns.
func ResolveDate(row domain.RawRow, candidates []string) *time.Time {
	for _, col := range candidates {
		cell := row.Cell(col)
		if cell.IsMissing() {
			continue
		}
		var d *time.Time
		if cell.Kind == domain.CellNumber {
			d = dateFromSerial(cell.Number)
		} else {
			d = dateFromText(cell.Text)
		}
		if d != nil {
			return d
		}
	}
	return nil
}

// dateFromSerial interprets a numeric cell as a day-count offset from the
// spreadsheet epoch. Fractional day parts (times) are dropped.
func dateFromSerial(f float64) *time.Time {
	if f <= 0 {
		return nil
	}
	d := serialEpoch.AddDate(0, 0, int(f))
	return &d
}

// dateFromText strips the Korean date-word suffixes and everything that is
// not a digit or separator, then parses the dotted two-digit-year form.
func dateFromText(s string) *time.Time {
	s = strings.NewReplacer("년", ".", "월", ".", "일", "").Replace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '/':
			b.WriteByte('.')
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	d, err := time.Parse(dottedDateLayout, cleaned)
	if err != nil {
		return nil
	}
	return &d
}
