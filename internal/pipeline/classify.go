package pipeline

import (
	"github.com/shopspring/decimal"
)

// IsTransactionRow reports whether a normalized row holds a real transaction.
// Blank merchants, known sentinel line items (leaked header text, fee-waiver
// rows) and zero amounts are noise. The flag is advisory: callers keep the
// row and decide themselves whether to skip it.
func IsTransactionRow(merchant string, amount decimal.Decimal, sentinels []string) bool {
	if merchant == "" {
		return false
	}
	for _, s := range sentinels {
		if merchant == s {
			return false
		}
	}
	return !amount.IsZero()
}
