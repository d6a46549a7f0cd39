// Package ui renders companies in the terminal: the company table, the
// detail view, the insight charts and the interactive browser.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.Color("#0F172A")
	Accent  = lipgloss.Color("#8B5CF6")
	Muted   = lipgloss.Color("#64748B")
	Danger  = lipgloss.Color("#E53935")

	// ChartColors cycle across pie slices.
	ChartColors = []lipgloss.Color{"#8B5CF6", "#D946EF", "#F97316", "#0EA5E9", "#22C55E"}
)

// PlaceholderImage stands in for a missing company image.
const PlaceholderImage = "https://via.placeholder.com/200"

const NotAvailable = "N/A"

type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Label     lipgloss.Style
	Link      lipgloss.Style
	Error     lipgloss.Style
	Tag       lipgloss.Style
	TagActive lipgloss.Style
	TagCursor lipgloss.Style
	Bar       lipgloss.Style
	Border    lipgloss.Style
	Focused   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Subtitle:  lipgloss.NewStyle().Foreground(Muted),
		Header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:      lipgloss.NewStyle().Padding(0, 1),
		Selected:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(Accent),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Label:     lipgloss.NewStyle().Bold(true),
		Link:      lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#2563EB")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(Danger),
		Tag:       lipgloss.NewStyle().Foreground(Muted),
		TagActive: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		TagCursor: lipgloss.NewStyle().Underline(true),
		Bar:       lipgloss.NewStyle().Foreground(Accent),
		Border:    lipgloss.NewStyle().Foreground(Muted),
		Focused:   lipgloss.NewStyle().Bold(true).Foreground(Accent),
	}
}

// orNA substitutes the fallback text for an empty value.
func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
