package pipeline

import (
	"strings"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
)

// CleanText converts a raw cell to a cleaned merchant-name string. Missing
// cells become the empty string, numeric cells their plain decimal text.
// Text cells are scrubbed of the whitespace noise card-company exports carry:
// zero-width spaces, non-breaking spaces, doubled spaces, padding.
func CleanText(c domain.Cell) string {
	if c.IsMissing() {
		return ""
	}
	return cleanString(c.String())
}

func cleanString(s string) string {
	s = strings.ReplaceAll(s, "\u200b", "")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	// Fields splits on any whitespace run, so rejoining collapses and trims
	// in one pass.
	return strings.Join(strings.Fields(s), " ")
}

// CleanTexts cleans a sequence of cells in order.
func CleanTexts(cells []domain.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = CleanText(c)
	}
	return out
}
