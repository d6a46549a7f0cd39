package ui

import (
	"fmt"
	"strconv"
	"strings"

	"companydir/pkg/companies"
	"companydir/pkg/insights"
)

// Detail renders every descriptive field of one company.
func Detail(c companies.Company, styles Styles) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(orNA(c.DisplayName())))
	sb.WriteString("\n")
	image := companies.Deref(c.Image)
	if image == "" {
		image = PlaceholderImage
	}
	sb.WriteString(styles.Muted.Render(image))
	sb.WriteString("\n\n")

	if desc := companies.Deref(c.FullDescription); desc != "" {
		sb.WriteString(desc)
		sb.WriteString("\n\n")
	} else if about := companies.Deref(c.About); about != "" {
		sb.WriteString(about)
		sb.WriteString("\n\n")
	}

	field := func(label, value string) {
		fmt.Fprintf(&sb, "%s %s\n", styles.Label.Render(label+":"), orNA(value))
	}

	field("Industry", strings.Join(c.IndustryList(), ", "))
	field("Location", c.Location())
	field("Country", companies.Deref(c.CountryCode))
	field("Website", companies.Deref(c.Website))
	field("Founded", companies.Deref(c.FoundedDate))
	field("Employees", formatInt(c.NumEmployees))
	field("Valuation", insights.FormatUSD(c.ValueUSD))
	field("Last funding", companies.Deref(c.LastFundingType))
	field("Investors", strings.Join(c.InvestorList(), ", "))
	field("Monthly visits", formatInt(c.MonthlyVisits))
	field("CB rank", formatInt(c.CBRank))

	sb.WriteString(styles.Label.Render("Social Media:"))
	sb.WriteString("\n")
	links := c.SocialLinks()
	if len(links) == 0 {
		sb.WriteString("  " + NotAvailable + "\n")
	}
	for _, link := range links {
		sb.WriteString("  " + styles.Link.Render(link) + "\n")
	}

	return sb.String()
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
