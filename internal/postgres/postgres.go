package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"summarystore/internal/migration"

	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open connects to databaseURL, applies the embedded migrations and
// returns a Repository that owns the pool.
func Open(ctx context.Context, databaseURL string, log *slog.Logger) (*Repository, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = migrateUp(ctx, pool, log); err != nil {
		pool.Close()
		return nil, err
	}

	return &Repository{q: pool, pool: pool}, nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) (err error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		err = errors.Join(err, sqlDB.Close())
	}()

	// dbInstance holds a pool connection until m is closed.
	dbInstance, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("create DB instance: %w", err)
	}

	m, err := migration.New(migrationsFS, "migrations", "pgx5", dbInstance)
	if err != nil {
		return errors.Join(err, dbInstance.Close())
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		err = errors.Join(err, sourceErr, dbErr)
	}()

	return migration.Up(ctx, m, log, "backend", "postgres")
}
