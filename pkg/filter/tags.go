package filter

import (
	"slices"
	"strings"

	"companydir/pkg/companies"
)

// IndustryTags lists every distinct industry in the collection, sorted.
func IndustryTags(collection []companies.Company) []string {
	seen := make(map[string]struct{})
	for _, co := range collection {
		for _, ind := range co.IndustryList() {
			seen[ind] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// LocationTags lists the distinct leading segment of each address
// ("Seattle, Washington, United States" gives "Seattle"), sorted.
func LocationTags(collection []companies.Company) []string {
	seen := make(map[string]struct{})
	for _, co := range collection {
		head, _, _ := strings.Cut(co.Location(), ",")
		if head = strings.TrimSpace(head); head != "" {
			seen[head] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
