// Package chart renders small aggregated (label, amount) tables. The
// analysis core only ever hands a renderer its output; nothing flows back.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Entry is one bar: a category label or month key with its total.
type Entry struct {
	Label  string
	Amount decimal.Decimal
}

// Renderer consumes an aggregated table and draws it.
type Renderer interface {
	Render(title string, entries []Entry) error
}

// TermRenderer draws horizontal bars in the terminal, scaled to the largest
// amount.
type TermRenderer struct {
	out     io.Writer
	width   int
	printer *message.Printer
}

// NewTermRenderer creates a renderer writing to out.
func NewTermRenderer(out io.Writer) *TermRenderer {
	return &TermRenderer{
		out:     out,
		width:   40,
		printer: message.NewPrinter(language.Korean),
	}
}

// Render draws one bar per entry. Negative totals (refund-heavy groups) get
// an empty bar but keep their amount visible.
func (r *TermRenderer) Render(title string, entries []Entry) error {
	bold := color.New(color.Bold)
	bar := color.New(color.FgCyan)

	if _, err := bold.Fprintf(r.out, "%s\n", title); err != nil {
		return err
	}

	labelWidth := 0
	max := decimal.Zero
	for _, e := range entries {
		if n := len([]rune(e.Label)); n > labelWidth {
			labelWidth = n
		}
		if e.Amount.GreaterThan(max) {
			max = e.Amount
		}
	}

	for _, e := range entries {
		pad := strings.Repeat(" ", labelWidth-len([]rune(e.Label)))
		fmt.Fprintf(r.out, "%s%s  ", e.Label, pad)
		bar.Fprint(r.out, strings.Repeat("█", r.barLength(e.Amount, max)))
		r.printer.Fprintf(r.out, "  %d원\n", e.Amount.Round(0).IntPart())
	}
	return nil
}

func (r *TermRenderer) barLength(amount, max decimal.Decimal) int {
	if max.IsZero() || amount.Sign() <= 0 {
		return 0
	}
	n := amount.Mul(decimal.NewFromInt(int64(r.width))).Div(max).IntPart()
	if n < 1 {
		n = 1
	}
	return int(n)
}
