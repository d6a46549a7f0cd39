package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"companydir/pkg/config"
)

// OpenSQLite opens the SQLite companies file through gorm. The file is
// expected to exist already unless cfg.ApplySchema is set.
func OpenSQLite(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	if cfg.SQLitePath == "" {
		return nil, fmt.Errorf("SQLITE_PATH environment variable not set")
	}

	gdb, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}

	log.Info("connected to SQLite", zap.String("path", cfg.SQLitePath))

	if cfg.ApplySchema {
		if err := ApplySQLiteSchema(ctx, gdb, cfg.SchemaPath); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("schema applied", zap.String("source", schemaSource(cfg.SchemaPath)))
	}

	return gdb, nil
}

// ApplySQLiteSchema executes the companies schema through gorm.
func ApplySQLiteSchema(ctx context.Context, gdb *gorm.DB, schemaPath string) error {
	sql, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	if err := gdb.WithContext(ctx).Exec(sql).Error; err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// CloseSQLite releases the connection pool behind gdb.
func CloseSQLite(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
