// Package filter derives the displayed subset of a company collection from
// the user's filter state. Every function returns a new slice; the input
// collection is never reordered or modified.
//
// Filter axes (free-text search, industry tags, location tags) are combined
// with a logical AND.
package filter

import (
	"slices"
	"strings"

	"companydir/pkg/companies"
)

// Field selects which columns the free-text search looks at.
type Field uint8

const (
	FieldName Field = 1 << iota
	FieldIndustries
	FieldLocation

	// AllFields is used when Criteria.SearchFields is zero.
	AllFields = FieldName | FieldIndustries | FieldLocation
)

type Criteria struct {
	Search       string
	Industries   []string
	Locations    []string
	SearchFields Field
}

// IsZero reports whether the criteria select the whole collection.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" && len(c.Industries) == 0 && len(c.Locations) == 0
}

// Reset clears every axis but keeps the configured search fields.
func (c Criteria) Reset() Criteria {
	return Criteria{SearchFields: c.SearchFields}
}

// Apply returns the companies matching c in their original order.
func Apply(collection []companies.Company, c Criteria) []companies.Company {
	out := make([]companies.Company, 0, len(collection))
	m := newMatcher(c)
	for _, co := range collection {
		if m.match(co) {
			out = append(out, co)
		}
	}
	return out
}

// Match reports whether a single company passes every axis of c.
func Match(co companies.Company, c Criteria) bool {
	return newMatcher(c).match(co)
}

type matcher struct {
	term       string
	fields     Field
	industries map[string]struct{}
	locations  []string
}

func newMatcher(c Criteria) matcher {
	m := matcher{
		term:   strings.ToLower(strings.TrimSpace(c.Search)),
		fields: c.SearchFields,
	}
	if m.fields == 0 {
		m.fields = AllFields
	}
	if len(c.Industries) > 0 {
		m.industries = make(map[string]struct{}, len(c.Industries))
		for _, tag := range c.Industries {
			if tag = strings.TrimSpace(tag); tag != "" {
				m.industries[tag] = struct{}{}
			}
		}
	}
	for _, loc := range c.Locations {
		if loc = strings.ToLower(strings.TrimSpace(loc)); loc != "" {
			m.locations = append(m.locations, loc)
		}
	}
	return m
}

func (m matcher) match(co companies.Company) bool {
	return m.matchSearch(co) && m.matchIndustries(co) && m.matchLocations(co)
}

func (m matcher) matchSearch(co companies.Company) bool {
	if m.term == "" {
		return true
	}
	if m.fields&FieldName != 0 && containsFold(co.DisplayName(), m.term) {
		return true
	}
	if m.fields&FieldIndustries != 0 && containsFold(companies.Deref(co.Industries), m.term) {
		return true
	}
	if m.fields&FieldLocation != 0 && containsFold(co.Location(), m.term) {
		return true
	}
	return false
}

// matchIndustries is case-sensitive: tags are compared as entered.
func (m matcher) matchIndustries(co companies.Company) bool {
	if len(m.industries) == 0 {
		return true
	}
	for _, ind := range co.IndustryList() {
		if _, ok := m.industries[ind]; ok {
			return true
		}
	}
	return false
}

func (m matcher) matchLocations(co companies.Company) bool {
	if len(m.locations) == 0 {
		return true
	}
	loc := strings.ToLower(co.Location())
	for _, want := range m.locations {
		if strings.Contains(loc, want) {
			return true
		}
	}
	return false
}

// containsFold expects lowerTerm to be lower-cased already.
func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// Toggle adds tag to selection, or removes it when already selected.
func Toggle(selection []string, tag string) []string {
	if i := slices.Index(selection, tag); i >= 0 {
		return slices.Delete(slices.Clone(selection), i, i+1)
	}
	return append(slices.Clone(selection), tag)
}
