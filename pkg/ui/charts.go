package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"companydir/pkg/insights"
)

const (
	barGlyph     = "█"
	defaultWidth = 40
)

// BarChart draws one horizontal bar per company, scaled to the largest
// valuation. Companies without a valuation get an empty bar and N/A.
func BarChart(bars []insights.Bar, width int, styles Styles) string {
	if width <= 0 {
		width = defaultWidth
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Valuation (Billions USD)"))
	sb.WriteString("\n")
	if len(bars) == 0 {
		sb.WriteString(styles.Muted.Render("No data"))
		return sb.String()
	}

	nameWidth := 0
	peak := decimal.Zero
	for _, b := range bars {
		if w := lipgloss.Width(b.Name); w > nameWidth {
			nameWidth = w
		}
		if b.Billions != nil && b.Billions.GreaterThan(peak) {
			peak = *b.Billions
		}
	}

	for _, b := range bars {
		label := NotAvailable
		n := 0
		if b.Billions != nil {
			label = "$" + b.Billions.StringFixed(2) + "B"
			if peak.IsPositive() {
				n = int(b.Billions.Div(peak).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
			}
		}
		fmt.Fprintf(&sb, "%-*s %s %s\n", nameWidth, b.Name, styles.Bar.Render(strings.Repeat(barGlyph, n)), label)
	}
	return sb.String()
}

// PieChart is the terminal stand-in for a pie: one proportional segment per
// slice with its percentage label.
func PieChart(title string, parts []insights.Slice, width int, styles Styles) string {
	if width <= 0 {
		width = defaultWidth
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	if len(parts) == 0 {
		sb.WriteString(styles.Muted.Render("No data"))
		return sb.String()
	}

	nameWidth := 0
	for _, p := range parts {
		if w := lipgloss.Width(p.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for i, p := range parts {
		color := ChartColors[i%len(ChartColors)]
		n := int(decimal.NewFromFloat(p.Percent).Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).Round(0).IntPart())
		segment := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(barGlyph, n))
		fmt.Fprintf(&sb, "%-*s %s %.1f%% (%d)\n", nameWidth, p.Name, segment, p.Percent, p.Count)
	}
	return sb.String()
}
