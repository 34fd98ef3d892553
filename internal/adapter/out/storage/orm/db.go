// Package orm is the gorm-backed storage, sharing its schema with the pgx backend.
package orm

import (
	"context"
	"errors"
	"fmt"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/adapter/out/storage/migrations"
	"postboard/internal/service"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:          true,
		TranslateError:       true,
		DisableAutomaticPing: true,
	}
}

func Connect(ctx context.Context, dsn string, maxConns int32) (*gorm.DB, error) {
	return open(ctx, postgres.Open(dsn), maxConns)
}

func open(ctx context.Context, dialector gorm.Dialector, maxConns int32) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}
	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(int(maxConns))
		sqlDB.SetMaxIdleConns(int(maxConns) / 2)
	}
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// RunMigrations executes the schema on the underlying *sql.DB so DDL never
// goes through gorm's prepared statement cache.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("gorm sql db: %w", err)
	}
	all, err := migrations.All()
	if err != nil {
		return err
	}
	for _, m := range all {
		if _, err := sqlDB.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("exec migration %s: %w", m.Name, err)
		}
	}
	return nil
}

func listQuery(db *gorm.DB, params storage.ListParams) *gorm.DB {
	q := db.Order("id ASC")
	if params.AfterID > 0 {
		q = q.Where("id > ?", params.AfterID)
	}
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}
	return q
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}
