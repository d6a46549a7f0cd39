package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"companydir/pkg/companies"
	"companydir/pkg/config"
	"companydir/pkg/db"
)

// openStore connects the configured backend and returns its repository
// with the matching close function.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (companies.CompanyRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return companies.NewPostgresCompanyRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.CloseSQLite(gdb); err != nil {
				log.Warn("close sqlite", zap.Error(err))
			}
		}
		return companies.NewSQLiteCompanyRepository(gdb), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
