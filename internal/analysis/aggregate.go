package analysis

import (
	"sort"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// Group is one aggregation bucket: a category label or a YYYY-MM month key
// with the summed amount.
type Group struct {
	Key   string
	Total decimal.Decimal
}

const monthKeyLayout = "2006-01"

// ByCategory classifies every row's merchant and sums amounts per label.
// Output follows rule declaration order; labels no row mapped to are omitted
// (a strict groupby, not a reindex over all known categories).
func ByCategory(rows []domain.Transaction, classifier *Classifier) []Group {
	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		label := classifier.Classify(row.Merchant)
		totals[label] = totals[label].Add(row.Amount)
	}

	var out []Group
	for _, rule := range classifier.Rules() {
		if total, ok := totals[rule.Label]; ok {
			out = append(out, Group{Key: rule.Label, Total: total})
		}
	}
	return out
}

// ByMonth groups dated rows by calendar month and sums amounts per key,
// ascending. Rows without a resolved date are silently excluded.
func ByMonth(rows []domain.Transaction) []Group {
	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if row.Date == nil {
			continue
		}
		key := row.Date.Format(monthKeyLayout)
		totals[key] = totals[key].Add(row.Amount)
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Group, 0, len(keys))
	for _, k := range keys {
		out = append(out, Group{Key: k, Total: totals[k]})
	}
	return out
}
