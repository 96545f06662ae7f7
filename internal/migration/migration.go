package migration

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// New binds the migrations under dir in fsys to an open database driver.
// Closing the returned instance also closes dbInstance.
func New(fsys fs.FS, dir, dbName string, dbInstance database.Driver) (*migrate.Migrate, error) {
	srcInstance, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("create source instance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcInstance, dbName, dbInstance)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return m, nil
}

// Up applies every pending migration. Having nothing to apply is not an
// error. fields are attached to the log records.
func Up(ctx context.Context, m *migrate.Migrate, log *slog.Logger, fields ...any) error {
	migrateErr := m.Up()

	version, dirty, versionErr := m.Version()
	if versionErr == nil {
		fields = append(fields, "version", version, "dirty", dirty)
	} else if !errors.Is(versionErr, migrate.ErrNilVersion) {
		log.WarnContext(ctx, "Failed to fetch migration version",
			append([]any{"error", versionErr}, fields...)...)
	}

	if migrateErr != nil {
		if !errors.Is(migrateErr, migrate.ErrNoChange) {
			return fmt.Errorf("apply migrations: %w", migrateErr)
		}

		log.InfoContext(ctx, "No migrations to apply", fields...)
	} else {
		log.InfoContext(ctx, "DB is migrated", fields...)
	}

	return nil
}
