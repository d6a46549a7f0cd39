package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"companydir/pkg/companies"
	"companydir/pkg/testhelpers"
)

func TestSortByValuation(t *testing.T) {
	collection := []companies.Company{
		{ID: 1},
		{ID: 2, ValueUSD: companies.Ptr(1.0)},
		{ID: 3},
		{ID: 4, ValueUSD: companies.Ptr(3.0)},
		{ID: 5, ValueUSD: companies.Ptr(1.0)},
	}

	sorted := SortByValuation(collection)

	require.Equal(t, []int64{4, 2, 5, 1, 3}, ids(sorted))
	require.Equal(t, []int64{1, 2, 3, 4, 5}, ids(collection))

	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i].ValueUSD, sorted[i+1].ValueUSD
		if a == nil {
			require.Nil(t, b, "null valuation followed by a non-null one")
			continue
		}
		if b != nil {
			require.GreaterOrEqual(t, *a, *b)
		}
	}
}

func TestSortByName(t *testing.T) {
	collection := []companies.Company{
		{ID: 1, Name: companies.Ptr("beta")},
		{ID: 2, Name: companies.Ptr("Alpha")},
		{ID: 3},
	}

	require.Equal(t, []int64{3, 2, 1}, ids(SortByName(collection)))
}

func TestTags(t *testing.T) {
	collection := append(testhelpers.SampleCompanies(), companies.Company{ID: 4})

	require.Equal(t, []string{"AI/ML", "Bio Health", "Crypto", "Fintech"}, IndustryTags(collection))
	require.Equal(t, []string{"Remote", "San Francisco", "Seattle"}, LocationTags(collection))
}
