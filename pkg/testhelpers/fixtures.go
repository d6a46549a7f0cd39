package testhelpers

import "companydir/pkg/companies"

var p = companies.Ptr[string]

// Acme and Beta are the two reference companies used across the test suite.
func Acme() companies.Company {
	return companies.Company{
		ID:               1,
		Name:             p("Acme"),
		Industries:       p("AI/ML,Fintech"),
		Investors:        p("Sequoia Capital, Accel"),
		ValueUSD:         companies.Ptr(5000000000.0),
		LastFundingType:  p("Series C"),
		FoundedDate:      p("2015-03-01"),
		NumEmployees:     companies.Ptr[int64](250),
		Website:          p("https://acme.example"),
		SocialMediaLinks: p("https://twitter.com/acme, https://linkedin.com/company/acme"),
		Address:          p("San Francisco, California, United States"),
		CountryCode:      p("US"),
		CBRank:           companies.Ptr[int64](12),
		FullDescription:  p("Acme builds AI tooling for banks."),
		Image:            p("https://img.example/acme.png"),
	}
}

func Beta() companies.Company {
	return companies.Company{
		ID:         2,
		Name:       p("Beta"),
		Industries: p("Bio Health"),
		Address:    p("Seattle, Washington, United States"),
	}
}

func Gamma() companies.Company {
	return companies.Company{
		ID:              3,
		Name:            p("Gamma Crypto"),
		Industries:      p("Crypto, Fintech"),
		Investors:       p("a16z, Paradigm, Coinbase Ventures"),
		ValueUSD:        companies.Ptr(750000000.0),
		LastFundingType: p("Series A"),
		Address:         p("Remote"),
		CountryCode:     p("GB"),
		CBRank:          companies.Ptr[int64](3),
	}
}

// SampleCompanies returns Acme, Beta and Gamma in id order.
func SampleCompanies() []companies.Company {
	return []companies.Company{Acme(), Beta(), Gamma()}
}
