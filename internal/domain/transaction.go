package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one analyzed statement row: the raw row plus the derived
// fields every higher operation reads.
type Transaction struct {
	// Merchant is the cleaned merchant name, empty when the source cell is
	// blank or missing.
	Merchant string

	// Amount is the coerced monetary value; unparsable or blank cells coerce
	// to zero.
	Amount decimal.Decimal

	// Date is the resolved transaction date, nil when no candidate column
	// parsed for this row.
	Date *time.Time

	// IsTransaction marks rows that hold a real transaction. Noise rows
	// (blank merchant, sentinel text, zero amount) stay in the table with the
	// flag cleared so consumers can exclude them without re-deriving the rule.
	IsTransaction bool

	// Source keeps the original cells for export.
	Source RawRow
}

// Table is the analyzed statement. Row order equals source spreadsheet order;
// the table is rebuilt wholesale on every load, never patched in place.
type Table struct {
	Columns []string
	Rows    []Transaction
}

// Transactions returns the rows flagged as real transactions, in order.
func (t *Table) Transactions() []Transaction {
	out := make([]Transaction, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.IsTransaction {
			out = append(out, row)
		}
	}
	return out
}

// Total sums the amounts of all rows.
func (t *Table) Total() decimal.Decimal {
	total := decimal.Zero
	for _, row := range t.Rows {
		total = total.Add(row.Amount)
	}
	return total
}
