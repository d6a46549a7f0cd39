package companies

import (
	"context"
	"sort"
)

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompanyByID(ctx context.Context, id int64) (Company, error)
	ListByValuation(ctx context.Context) ([]Valuation, error)
	ListByRank(ctx context.Context) ([]RankedCompany, error)
	ListByInvestorCount(ctx context.Context) ([]InvestorCount, error)
	Ping(ctx context.Context) error
}

type companyService struct {
	repo CompanyRepository
}

func NewCompanyService(repo CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]Company, error) {
	return s.repo.ListCompanies(ctx)
}

func (s *companyService) GetCompanyByID(ctx context.Context, id int64) (Company, error) {
	return s.repo.GetCompanyByID(ctx, id)
}

func (s *companyService) ListByValuation(ctx context.Context) ([]Valuation, error) {
	return s.repo.ListByValuation(ctx)
}

func (s *companyService) ListByRank(ctx context.Context) ([]RankedCompany, error) {
	return s.repo.ListByRank(ctx)
}

// ListByInvestorCount orders companies by how many investors they list,
// most first. Ties keep the repository's id order.
func (s *companyService) ListByInvestorCount(ctx context.Context) ([]InvestorCount, error) {
	counts, err := s.repo.ListInvestors(ctx)
	if err != nil {
		return nil, err
	}

	for i := range counts {
		counts[i].InvestorCount = len(SplitList(counts[i].Investors))
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].InvestorCount > counts[j].InvestorCount
	})

	return counts, nil
}

func (s *companyService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
