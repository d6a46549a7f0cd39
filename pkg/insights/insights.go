// Package insights computes the aggregate views shown next to the company
// table: a categorical distribution and a valuation ranking.
package insights

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"companydir/pkg/companies"
	"companydir/pkg/filter"
)

const Unknown = "Unknown"

var billion = decimal.NewFromInt(1_000_000_000)

// KeyFunc picks the category a company is counted under.
type KeyFunc func(companies.Company) string

func ByFundingType(c companies.Company) string { return companies.Deref(c.LastFundingType) }

func ByCountry(c companies.Company) string { return companies.Deref(c.CountryCode) }

func ByPrimaryIndustry(c companies.Company) string {
	if list := c.IndustryList(); len(list) > 0 {
		return list[0]
	}
	return ""
}

// GroupBy resolves a CLI-facing grouping name.
func GroupBy(name string) (KeyFunc, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "funding", "funding_type", "type":
		return ByFundingType, true
	case "country", "country_code":
		return ByCountry, true
	case "industry", "industries":
		return ByPrimaryIndustry, true
	default:
		return nil, false
	}
}

type Slice struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution counts companies per category. Blank categories are counted
// as Unknown. Slices are ordered by count descending, then name.
func Distribution(collection []companies.Company, key KeyFunc) []Slice {
	counts := make(map[string]int)
	for _, c := range collection {
		name := strings.TrimSpace(key(c))
		if name == "" {
			name = Unknown
		}
		counts[name]++
	}

	total := len(collection)
	parts := make([]Slice, 0, len(counts))
	for name, n := range counts {
		pct, _ := decimal.NewFromInt(int64(n)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(total))).
			Round(1).
			Float64()
		parts = append(parts, Slice{Name: name, Count: n, Percent: pct})
	}
	slices.SortFunc(parts, func(a, b Slice) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return parts
}

type Bar struct {
	Name     string           `json:"name"`
	ValueUSD *float64         `json:"value_usd"`
	Billions *decimal.Decimal `json:"billions"`
}

// ValuationRanking orders valuations descending with missing values last
// and scales each value to billions for display.
func ValuationRanking(vals []companies.Valuation) []Bar {
	sorted := slices.Clone(vals)
	slices.SortStableFunc(sorted, func(a, b companies.Valuation) int {
		return filter.CompareValuation(a.ValueUSD, b.ValueUSD)
	})

	bars := make([]Bar, 0, len(sorted))
	for _, v := range sorted {
		bar := Bar{Name: companies.Deref(v.Name), ValueUSD: v.ValueUSD}
		if v.ValueUSD != nil {
			b := ToBillions(*v.ValueUSD)
			bar.Billions = &b
		}
		bars = append(bars, bar)
	}
	return bars
}

// RankingFromCompanies projects a full collection onto valuations.
func RankingFromCompanies(collection []companies.Company) []Bar {
	vals := make([]companies.Valuation, 0, len(collection))
	for _, c := range collection {
		vals = append(vals, companies.Valuation{Name: c.Name, ValueUSD: c.ValueUSD})
	}
	return ValuationRanking(vals)
}

func ToBillions(usd float64) decimal.Decimal {
	return decimal.NewFromFloat(usd).Div(billion)
}

// FormatUSD renders a valuation as $X.XXB, $X.XXM or $X, and N/A when absent.
func FormatUSD(v *float64) string {
	if v == nil {
		return "N/A"
	}
	d := decimal.NewFromFloat(*v)
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(billion):
		return "$" + d.Div(billion).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return "$" + d.Div(decimal.NewFromInt(1_000_000)).StringFixed(2) + "M"
	default:
		return "$" + d.StringFixed(0)
	}
}
