package ui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"companydir/pkg/companies"
	"companydir/pkg/insights"
)

var TableHeaders = []string{"Logo", "Name", "Industry", "Location", "Investors", "Valuation", "Founded"}

// TableRow is the display form of one company, fallbacks applied.
func TableRow(c companies.Company) []string {
	return []string{
		logoCell(c.Image),
		orNA(c.DisplayName()),
		orNA(strings.Join(c.IndustryList(), ", ")),
		orNA(c.Location()),
		orNA(strings.Join(c.InvestorList(), ", ")),
		insights.FormatUSD(c.ValueUSD),
		orNA(companies.Deref(c.FoundedDate)),
	}
}

// logoCell shows the image host; a terminal cannot show the image itself.
func logoCell(image *string) string {
	raw := companies.Deref(image)
	if raw == "" {
		return NotAvailable
	}
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return u.Host
	}
	return raw
}

// CompanyTable renders the collection. selected highlights one data row;
// pass -1 for none.
func CompanyTable(items []companies.Company, selected int, styles Styles) string {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, TableRow(c))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers(TableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case row == selected:
				return styles.Selected
			default:
				return styles.Cell
			}
		})

	if len(items) == 0 {
		return t.Render() + "\n" + styles.Muted.Render("No companies match the current filters.")
	}
	return t.Render()
}
