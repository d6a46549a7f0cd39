package companies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository is the read-only query surface over the companies
// table. Every method runs exactly one statement.
type CompanyRepository interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompanyByID(ctx context.Context, id int64) (Company, error)
	ListByValuation(ctx context.Context) ([]Valuation, error)
	ListByRank(ctx context.Context) ([]RankedCompany, error)
	ListInvestors(ctx context.Context) ([]InvestorCount, error)
	Ping(ctx context.Context) error
}

const companyColumns = `id, name, industries, investors, value_usd, last_funding_type,
              founded_date, num_employees, website, social_media_links, monthly_visits,
              about, address, country_code, cb_rank, full_description, image`

// Null valuations sort after every non-null one on both Postgres and SQLite.
const valuationOrder = `value_usd IS NULL, value_usd DESC, id`

const rankOrder = `cb_rank IS NULL, cb_rank ASC, id`

type postgresCompanyRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &postgresCompanyRepository{pool: pool}
}

func scanCompany(row pgx.Row, c *Company) error {
	return row.Scan(&c.ID, &c.Name, &c.Industries, &c.Investors, &c.ValueUSD, &c.LastFundingType,
		&c.FoundedDate, &c.NumEmployees, &c.Website, &c.SocialMediaLinks, &c.MonthlyVisits,
		&c.About, &c.Address, &c.CountryCode, &c.CBRank, &c.FullDescription, &c.Image)
}

func (r *postgresCompanyRepository) ListCompanies(ctx context.Context) ([]Company, error) {
	query := `SELECT ` + companyColumns + `
              FROM companies
              ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *postgresCompanyRepository) GetCompanyByID(ctx context.Context, id int64) (Company, error) {
	query := `SELECT ` + companyColumns + `
              FROM companies
              WHERE id = $1`

	var c Company
	if err := scanCompany(r.pool.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, err
	}

	return c, nil
}

func (r *postgresCompanyRepository) ListByValuation(ctx context.Context) ([]Valuation, error) {
	query := `SELECT name, value_usd
              FROM companies
              ORDER BY ` + valuationOrder

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	valuations := make([]Valuation, 0)
	for rows.Next() {
		var v Valuation
		if err := rows.Scan(&v.Name, &v.ValueUSD); err != nil {
			return nil, err
		}
		valuations = append(valuations, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return valuations, nil
}

func (r *postgresCompanyRepository) ListByRank(ctx context.Context) ([]RankedCompany, error) {
	query := `SELECT id, name, cb_rank
              FROM companies
              ORDER BY ` + rankOrder

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranked := make([]RankedCompany, 0)
	for rows.Next() {
		var rc RankedCompany
		if err := rows.Scan(&rc.ID, &rc.Name, &rc.CBRank); err != nil {
			return nil, err
		}
		ranked = append(ranked, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranked, nil
}

func (r *postgresCompanyRepository) ListInvestors(ctx context.Context) ([]InvestorCount, error) {
	query := `SELECT id, name, investors
              FROM companies
              ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]InvestorCount, 0)
	for rows.Next() {
		var ic InvestorCount
		if err := rows.Scan(&ic.ID, &ic.Name, &ic.Investors); err != nil {
			return nil, err
		}
		counts = append(counts, ic)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *postgresCompanyRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
