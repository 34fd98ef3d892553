package postgres

import (
	"context"
	"errors"
	"fmt"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/adapter/out/storage/migrations"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBuildingQuery = errors.New("error building sql-query")

// Connect opens a pgx pool and verifies the server is reachable.
func Connect(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	cfg.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Migrate applies the embedded schema in file order.
func Migrate(ctx context.Context, db trmpgx.Tr) error {
	all, err := migrations.All()
	if err != nil {
		return err
	}
	for _, m := range all {
		if _, err := db.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("exec migration %s: %w", m.Name, err)
		}
	}
	return nil
}

func selectList(table string, columns []string, params storage.ListParams) sq.SelectBuilder {
	qb := sq.
		Select(columns...).
		From(table).
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar)
	if params.AfterID > 0 {
		qb = qb.Where(sq.Gt{"id": params.AfterID})
	}
	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	return qb
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
