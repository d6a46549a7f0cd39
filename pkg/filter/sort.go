package filter

import (
	"cmp"
	"slices"
	"strings"

	"companydir/pkg/companies"
)

// SortByValuation returns a copy ordered by value_usd descending. Companies
// without a valuation come after all valued ones, in their original order.
func SortByValuation(collection []companies.Company) []companies.Company {
	out := slices.Clone(collection)
	slices.SortStableFunc(out, func(a, b companies.Company) int {
		return CompareValuation(a.ValueUSD, b.ValueUSD)
	})
	return out
}

// CompareValuation orders valuations descending with nil last.
func CompareValuation(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*b, *a)
	}
}

// SortByName returns a copy ordered case-insensitively by name.
func SortByName(collection []companies.Company) []companies.Company {
	out := slices.Clone(collection)
	slices.SortStableFunc(out, func(a, b companies.Company) int {
		return strings.Compare(strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName()))
	})
	return out
}
