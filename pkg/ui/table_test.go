package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"companydir/pkg/companies"
	"companydir/pkg/testhelpers"
)

func TestTableRow_FormatsCompany(t *testing.T) {
	row := TableRow(testhelpers.Acme())

	require.Equal(t, []string{
		"img.example",
		"Acme",
		"AI/ML, Fintech",
		"San Francisco, California, United States",
		"Sequoia Capital, Accel",
		"$5.00B",
		"2015-03-01",
	}, row)
}

func TestTableRow_FallsBackToNA(t *testing.T) {
	row := TableRow(companies.Company{ID: 9})

	for i, cell := range row {
		require.Equal(t, NotAvailable, cell, "column %s", TableHeaders[i])
	}
}

func TestCompanyTable_RendersHeadersAndRows(t *testing.T) {
	out := CompanyTable(testhelpers.SampleCompanies(), -1, DefaultStyles())

	for _, h := range TableHeaders {
		require.Contains(t, out, h)
	}
	require.Contains(t, out, "Acme")
	require.Contains(t, out, "Gamma Crypto")
	require.Contains(t, out, "$750.00M")
}

func TestCompanyTable_Empty(t *testing.T) {
	out := CompanyTable(nil, -1, DefaultStyles())

	require.Contains(t, out, "No companies match the current filters.")
}
