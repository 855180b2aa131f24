package pipeline

import (
	"strings"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// Options carries the statement layout the builder needs. Column names and
// sentinel strings vary per card company, so they come from configuration.
type Options struct {
	MerchantColumn string
	AmountColumn   string
	DateMarkers    []string
	Sentinels      []string
}

// Build derives the analyzed transaction table from a raw sheet: merchant
// cleanup, amount coercion, date resolution and row classification, one pass
// per row in source order. A missing merchant or amount column aborts with
// MissingColumnError and no partial table.
func Build(raw *domain.RawTable, opts Options) (*domain.Table, error) {
	if !hasColumn(raw.Columns, opts.MerchantColumn) {
		return nil, &domain.MissingColumnError{Column: opts.MerchantColumn}
	}
	if !hasColumn(raw.Columns, opts.AmountColumn) {
		return nil, &domain.MissingColumnError{Column: opts.AmountColumn}
	}

	dateCols := DateColumns(raw.Columns, opts.DateMarkers)

	table := &domain.Table{
		Columns: raw.Columns,
		Rows:    make([]domain.Transaction, 0, len(raw.Rows)),
	}
	for _, row := range raw.Rows {
		merchant := CleanText(row.Cell(opts.MerchantColumn))
		amount := CoerceAmount(row.Cell(opts.AmountColumn))
		table.Rows = append(table.Rows, domain.Transaction{
			Merchant:      merchant,
			Amount:        amount,
			Date:          ResolveDate(row, dateCols),
			IsTransaction: IsTransactionRow(merchant, amount, opts.Sentinels),
			Source:        row,
		})
	}
	return table, nil
}

// CoerceAmount converts a raw cell to a monetary amount. Korean statements
// format amounts with grouping commas and sometimes a trailing 원, so both
// are stripped before parsing; anything still unparsable coerces to zero.
func CoerceAmount(c domain.Cell) decimal.Decimal {
	switch c.Kind {
	case domain.CellNumber:
		return decimal.NewFromFloat(c.Number)
	case domain.CellText:
		s := strings.TrimSpace(c.Text)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSuffix(s, "원")
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
