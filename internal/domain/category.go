package domain

import "fmt"

// CategoryRule maps one category label to its keyword set. A rule with no
// keywords never matches by keyword; the last rule of a set doubles as the
// catch-all label.
type CategoryRule struct {
	Label    string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet is the ordered classification rule list. First matching rule wins;
// the last entry is the catch-all. Loaded once per session and never mutated.
type RuleSet []CategoryRule

// Validate checks the structural invariants: at least one rule, unique
// labels, and a keyword-free catch-all as the final entry.
func (rs RuleSet) Validate() error {
	if len(rs) == 0 {
		return fmt.Errorf("category rules: empty rule set")
	}
	seen := make(map[string]bool, len(rs))
	for _, r := range rs {
		if r.Label == "" {
			return fmt.Errorf("category rules: rule with empty label")
		}
		if seen[r.Label] {
			return fmt.Errorf("category rules: duplicate label %q", r.Label)
		}
		seen[r.Label] = true
	}
	if last := rs[len(rs)-1]; len(last.Keywords) != 0 {
		return fmt.Errorf("category rules: last rule %q must be the keyword-free catch-all", last.Label)
	}
	return nil
}

// CatchAll returns the label of the final, keyword-free rule.
func (rs RuleSet) CatchAll() string {
	return rs[len(rs)-1].Label
}
