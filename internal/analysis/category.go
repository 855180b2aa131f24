package analysis

import (
	"strings"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
)

// Classifier maps merchant names to category labels through the ordered
// keyword rules. It is total: every merchant string maps to exactly one
// label, the catch-all when nothing matches.
type Classifier struct {
	rules domain.RuleSet
}

// NewClassifier builds a classifier over a validated rule set.
func NewClassifier(rules domain.RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Rules returns the underlying rule set, in declaration order.
func (c *Classifier) Rules() domain.RuleSet {
	return c.rules
}

// Classify returns the label of the first rule with a keyword that is a
// case-insensitive substring of the merchant name. Matching is deliberately
// substring rather than word-boundary: card statements run merchant names
// together ("스타벅스카페강남점"), so a keyword must be allowed to match
// inside a longer word.
func (c *Classifier) Classify(merchant string) string {
	m := strings.ToLower(merchant)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(m, strings.ToLower(kw)) {
				return rule.Label
			}
		}
	}
	return c.rules.CatchAll()
}
