package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"companydir/pkg/companies"
	"companydir/pkg/testhelpers"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	gdb := testhelpers.NewSQLiteDB(t)
	testhelpers.SeedSQLite(t, gdb, testhelpers.SampleCompanies()...)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	companies.NewCompanyHandler(companies.NewCompanyService(companies.NewSQLiteCompanyRepository(gdb))).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "list", "--api", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "Acme")
	require.Contains(t, out, "Beta")
	require.Contains(t, out, "Gamma Crypto")
}

func TestListCmd_Filters(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "list", "--api", srv.URL, "--industry", "Fintech", "--location", "remote")
	require.NoError(t, err)
	require.Contains(t, out, "Gamma Crypto")
	require.NotContains(t, out, "Acme")
	require.NotContains(t, out, "Beta")

	out, err = run(t, "list", "--api", srv.URL, "--search", "ACME")
	require.NoError(t, err)
	require.Contains(t, out, "Acme")
	require.NotContains(t, out, "Gamma")
}

func TestListCmd_SortByValuation(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "list", "--api", srv.URL, "--sort", "valuation")
	require.NoError(t, err)
	acme, gamma, beta := strings.Index(out, "Acme"), strings.Index(out, "Gamma"), strings.Index(out, "Beta")
	require.Less(t, acme, gamma)
	require.Less(t, gamma, beta)

	_, err = run(t, "list", "--api", srv.URL, "--sort", "founded")
	require.Error(t, err)
}

func TestShowCmd(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "show", "1", "--api", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "Acme builds AI tooling for banks.")
	require.Contains(t, out, "$5.00B")
}

func TestShowCmd_NotFound(t *testing.T) {
	srv := newAPIServer(t)

	_, err := run(t, "show", "42", "--api", srv.URL)
	require.EqualError(t, err, "Company not found")

	_, err = run(t, "show", "abc", "--api", srv.URL)
	require.EqualError(t, err, `invalid company id "abc"`)
}

func TestListCmd_ServerUnavailable(t *testing.T) {
	srv := newAPIServer(t)
	url := srv.URL
	srv.Close()

	_, err := run(t, "list", "--api", url)
	require.EqualError(t, err, "Failed to load company data")
}

func TestInsightsCmd(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "insights", "--api", srv.URL, "--group-by", "country")
	require.NoError(t, err)
	require.Contains(t, out, "Companies by country")
	require.Contains(t, out, "US")
	require.Contains(t, out, "GB")
	require.Contains(t, out, "Unknown")
	require.Contains(t, out, "Valuation (Billions USD)")
	require.Contains(t, out, "$5.00B")

	_, err = run(t, "insights", "--api", srv.URL, "--group-by", "color")
	require.Error(t, err)
}
