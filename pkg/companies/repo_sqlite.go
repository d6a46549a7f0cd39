package companies

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type sqliteCompanyRepository struct {
	db *gorm.DB
}

// NewSQLiteCompanyRepository serves the companies table from a SQLite file
// opened through gorm.
func NewSQLiteCompanyRepository(db *gorm.DB) CompanyRepository {
	return &sqliteCompanyRepository{db: db}
}

func (r *sqliteCompanyRepository) ListCompanies(ctx context.Context) ([]Company, error) {
	companies := make([]Company, 0)
	err := r.db.WithContext(ctx).
		Select(companyColumns).
		Order("id").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *sqliteCompanyRepository) GetCompanyByID(ctx context.Context, id int64) (Company, error) {
	var c Company
	err := r.db.WithContext(ctx).
		Select(companyColumns).
		Where("id = ?", id).
		Take(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, err
	}
	return c, nil
}

func (r *sqliteCompanyRepository) ListByValuation(ctx context.Context) ([]Valuation, error) {
	valuations := make([]Valuation, 0)
	err := r.db.WithContext(ctx).
		Model(&Company{}).
		Select("name, value_usd").
		Order(valuationOrder).
		Scan(&valuations).Error
	if err != nil {
		return nil, err
	}
	return valuations, nil
}

func (r *sqliteCompanyRepository) ListByRank(ctx context.Context) ([]RankedCompany, error) {
	ranked := make([]RankedCompany, 0)
	err := r.db.WithContext(ctx).
		Model(&Company{}).
		Select("id, name, cb_rank").
		Order(rankOrder).
		Scan(&ranked).Error
	if err != nil {
		return nil, err
	}
	return ranked, nil
}

func (r *sqliteCompanyRepository) ListInvestors(ctx context.Context) ([]InvestorCount, error) {
	counts := make([]InvestorCount, 0)
	err := r.db.WithContext(ctx).
		Model(&Company{}).
		Select("id, name, investors").
		Order("id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *sqliteCompanyRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
