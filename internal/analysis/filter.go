package analysis

import (
	"strings"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// FilterResult is the ephemeral outcome of one keyword filter pass. It is
// recomputed on every invocation and never persisted except through export.
type FilterResult struct {
	Rows     []domain.Transaction
	Count    int
	Total    decimal.Decimal
	Keywords []string
}

// EmptyMatch reports the "keywords given, nothing matched" state, which is a
// valid reportable outcome distinct from filtering without keywords.
func (r FilterResult) EmptyMatch() bool {
	return r.Count == 0 && len(r.Keywords) > 0
}

// Filter matches table rows whose merchant contains any keyword as a
// case-insensitive substring (OR semantics). Blank keywords are discarded
// first; an empty keyword set selects the entire table. Row order is
// preserved and the total is summed over the already-coerced amounts.
func Filter(table *domain.Table, keywords []string) FilterResult {
	usable := UsableKeywords(keywords)

	res := FilterResult{Keywords: usable, Total: decimal.Zero}
	for _, row := range table.Rows {
		if len(usable) > 0 && !matchesAny(row.Merchant, usable) {
			continue
		}
		res.Rows = append(res.Rows, row)
		res.Total = res.Total.Add(row.Amount)
	}
	res.Count = len(res.Rows)
	return res
}

// UsableKeywords trims the given keywords and drops empty ones, preserving
// order.
func UsableKeywords(keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func matchesAny(merchant string, keywords []string) bool {
	m := strings.ToLower(merchant)
	for _, kw := range keywords {
		if strings.Contains(m, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
