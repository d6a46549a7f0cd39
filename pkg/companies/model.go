package companies

import "strings"

// Company is one row of the companies table. Every column except ID is
// nullable in the store and decoded into a pointer.
type Company struct {
	ID               int64    `json:"id" gorm:"column:id;primaryKey"`
	Name             *string  `json:"name" gorm:"column:name"`
	Industries       *string  `json:"industries" gorm:"column:industries"`
	Investors        *string  `json:"investors" gorm:"column:investors"`
	ValueUSD         *float64 `json:"value_usd" gorm:"column:value_usd"`
	LastFundingType  *string  `json:"last_funding_type" gorm:"column:last_funding_type"`
	FoundedDate      *string  `json:"founded_date" gorm:"column:founded_date"`
	NumEmployees     *int64   `json:"num_employees" gorm:"column:num_employees"`
	Website          *string  `json:"website" gorm:"column:website"`
	SocialMediaLinks *string  `json:"social_media_links" gorm:"column:social_media_links"`
	MonthlyVisits    *int64   `json:"monthly_visits" gorm:"column:monthly_visits"`
	About            *string  `json:"about" gorm:"column:about"`
	Address          *string  `json:"address" gorm:"column:address"`
	CountryCode      *string  `json:"country_code" gorm:"column:country_code"`
	CBRank           *int64   `json:"cb_rank" gorm:"column:cb_rank"`
	FullDescription  *string  `json:"full_description" gorm:"column:full_description"`
	Image            *string  `json:"image" gorm:"column:image"`
}

func (Company) TableName() string { return "companies" }

// Valuation is the projection served by the valuation ranking.
type Valuation struct {
	Name     *string  `json:"name" gorm:"column:name"`
	ValueUSD *float64 `json:"value_usd" gorm:"column:value_usd"`
}

type RankedCompany struct {
	ID     int64   `json:"id" gorm:"column:id"`
	Name   *string `json:"name" gorm:"column:name"`
	CBRank *int64  `json:"cb_rank" gorm:"column:cb_rank"`
}

type InvestorCount struct {
	ID            int64   `json:"id" gorm:"column:id"`
	Name          *string `json:"name" gorm:"column:name"`
	Investors     *string `json:"investors" gorm:"column:investors"`
	InvestorCount int     `json:"investor_count" gorm:"-"`
}

// SplitList parses a comma-delimited column into its trimmed, non-empty
// entries in their stored order.
func SplitList(raw *string) []string {
	if raw == nil {
		return nil
	}
	parts := strings.Split(*raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c Company) IndustryList() []string { return SplitList(c.Industries) }

func (c Company) InvestorList() []string { return SplitList(c.Investors) }

func (c Company) SocialLinks() []string { return SplitList(c.SocialMediaLinks) }

// Location is the address column, which doubles as the company location.
func (c Company) Location() string { return Deref(c.Address) }

func (c Company) DisplayName() string { return Deref(c.Name) }

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr is a small helper for building fixtures and projections.
func Ptr[T any](v T) *T {
	return &v
}
