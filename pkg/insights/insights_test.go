package insights

import (
	"testing"

	"github.com/stretchr/testify/require"

	"companydir/pkg/companies"
	"companydir/pkg/testhelpers"
)

func TestDistribution_ByFundingType(t *testing.T) {
	collection := append(testhelpers.SampleCompanies(),
		companies.Company{ID: 4, LastFundingType: companies.Ptr("Series A")},
	)

	got := Distribution(collection, ByFundingType)

	require.Equal(t, []Slice{
		{Name: "Series A", Count: 2, Percent: 50},
		{Name: "Series C", Count: 1, Percent: 25},
		{Name: Unknown, Count: 1, Percent: 25},
	}, got)
}

func TestDistribution_PercentagesRounded(t *testing.T) {
	got := Distribution(testhelpers.SampleCompanies(), ByCountry)

	require.Len(t, got, 3)
	total := 0
	for _, s := range got {
		require.Equal(t, 33.3, s.Percent)
		total += s.Count
	}
	require.Equal(t, 3, total)
	require.Equal(t, []string{"GB", "US", Unknown}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestDistribution_Empty(t *testing.T) {
	require.Empty(t, Distribution(nil, ByPrimaryIndustry))
}

func TestByPrimaryIndustry(t *testing.T) {
	require.Equal(t, "AI/ML", ByPrimaryIndustry(testhelpers.Acme()))
	require.Equal(t, "", ByPrimaryIndustry(companies.Company{}))
}

func TestGroupBy(t *testing.T) {
	for _, name := range []string{"", "funding", "country", "Industry"} {
		_, ok := GroupBy(name)
		require.True(t, ok, name)
	}
	_, ok := GroupBy("colour")
	require.False(t, ok)
}

func TestValuationRanking(t *testing.T) {
	vals := []companies.Valuation{
		{Name: companies.Ptr("Beta")},
		{Name: companies.Ptr("Acme"), ValueUSD: companies.Ptr(5e9)},
		{Name: companies.Ptr("Small"), ValueUSD: companies.Ptr(2.5e8)},
	}

	bars := ValuationRanking(vals)

	require.Equal(t, []string{"Acme", "Small", "Beta"}, []string{bars[0].Name, bars[1].Name, bars[2].Name})
	require.Equal(t, "5", bars[0].Billions.String())
	require.Equal(t, "0.25", bars[1].Billions.String())
	require.Nil(t, bars[2].Billions)
	require.Equal(t, "Beta", *vals[0].Name, "input order untouched")
}

func TestRankingFromCompanies(t *testing.T) {
	bars := RankingFromCompanies(testhelpers.SampleCompanies())

	require.Equal(t, []string{"Acme", "Gamma Crypto", "Beta"}, []string{bars[0].Name, bars[1].Name, bars[2].Name})
}

func TestFormatUSD(t *testing.T) {
	require.Equal(t, "N/A", FormatUSD(nil))
	require.Equal(t, "$5.00B", FormatUSD(companies.Ptr(5e9)))
	require.Equal(t, "$1.23B", FormatUSD(companies.Ptr(1234567890.0)))
	require.Equal(t, "$750.00M", FormatUSD(companies.Ptr(7.5e8)))
	require.Equal(t, "$950000", FormatUSD(companies.Ptr(950000.0)))
}
