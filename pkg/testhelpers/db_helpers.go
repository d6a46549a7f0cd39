package testhelpers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"companydir/pkg/companies"
	"companydir/pkg/config"
	"companydir/pkg/db"
)

// NewSQLiteDB opens a fresh SQLite file under t.TempDir with the companies
// schema applied.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "companies.db"),
		ApplySchema: true,
	}

	gdb, err := db.OpenSQLite(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.CloseSQLite(gdb) })
	return gdb
}

// SeedSQLite inserts rows exactly as given, ids included.
func SeedSQLite(t *testing.T, gdb *gorm.DB, rows ...companies.Company) {
	t.Helper()

	for _, row := range rows {
		row := row
		require.NoError(t, gdb.Create(&row).Error)
	}
}

// NewPostgresPool connects to DATABASE_URL_FOR_TEST, applies the schema and
// empties the companies table. The test is skipped when the variable is unset.
func NewPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL_FOR_TEST")
	if dsn == "" {
		t.Skip("DATABASE_URL_FOR_TEST not set; skipping repository tests")
	}

	ctx := context.Background()
	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	t.Cleanup(pool.Close)

	require.NoError(t, db.ApplyPostgresSchema(ctx, pool, ""))
	_, err = pool.Exec(ctx, "TRUNCATE TABLE companies")
	require.NoError(t, err)

	return pool
}

// SeedPostgres inserts rows exactly as given, ids included.
func SeedPostgres(t *testing.T, pool *pgxpool.Pool, rows ...companies.Company) {
	t.Helper()

	ctx := context.Background()
	for _, c := range rows {
		_, err := pool.Exec(ctx, `INSERT INTO companies (id, name, industries, investors, value_usd, last_funding_type,
              founded_date, num_employees, website, social_media_links, monthly_visits,
              about, address, country_code, cb_rank, full_description, image)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			c.ID, c.Name, c.Industries, c.Investors, c.ValueUSD, c.LastFundingType,
			c.FoundedDate, c.NumEmployees, c.Website, c.SocialMediaLinks, c.MonthlyVisits,
			c.About, c.Address, c.CountryCode, c.CBRank, c.FullDescription, c.Image)
		require.NoError(t, err)
	}
}
