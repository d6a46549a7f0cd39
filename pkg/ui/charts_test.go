package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"companydir/pkg/insights"
	"companydir/pkg/testhelpers"
)

func TestBarChart(t *testing.T) {
	bars := insights.RankingFromCompanies(testhelpers.SampleCompanies())
	out := BarChart(bars, 20, DefaultStyles())
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Len(t, lines, 4)
	require.Contains(t, lines[1], "Acme")
	require.Contains(t, lines[1], strings.Repeat(barGlyph, 20))
	require.Contains(t, lines[1], "$5.00B")
	require.Contains(t, lines[2], "Gamma Crypto")
	require.Contains(t, lines[2], strings.Repeat(barGlyph, 3))
	require.Contains(t, lines[2], "$0.75B")
	require.Contains(t, lines[3], "Beta")
	require.Contains(t, lines[3], NotAvailable)
	require.NotContains(t, lines[3], barGlyph)
}

func TestBarChart_Empty(t *testing.T) {
	require.Contains(t, BarChart(nil, 0, DefaultStyles()), "No data")
}

func TestPieChart(t *testing.T) {
	parts := insights.Distribution(testhelpers.SampleCompanies(), insights.ByFundingType)
	out := PieChart("Funding", parts, 30, DefaultStyles())

	require.Contains(t, out, "Funding")
	require.Contains(t, out, "Series C")
	require.Contains(t, out, "Series A")
	require.Contains(t, out, "Unknown")
	require.Contains(t, out, "33.3%")
}

func TestPieChart_Empty(t *testing.T) {
	require.Contains(t, PieChart("Funding", nil, 0, DefaultStyles()), "No data")
}
