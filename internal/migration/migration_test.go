package migration_test

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"
	"summarystore/internal/migration"
	"testing"
	"testing/fstest"

	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/mattn/go-sqlite3" // Required by the library implementation.
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migration.sqlite"))
	if err != nil {
		t.Fatalf("failed to open DB: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func upOnce(t *testing.T, db *sql.DB, fsys fstest.MapFS, log *slog.Logger) error {
	t.Helper()

	dbInstance, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		t.Fatalf("failed to create DB instance: %v", err)
	}

	m, err := migration.New(fsys, "migrations", "sqlite3", dbInstance)
	if err != nil {
		t.Fatalf("failed to create migrate instance: %v", err)
	}

	return migration.Up(context.Background(), m, log, "dbPath", "migration.sqlite")
}

func TestUpAppliesThenReportsNoChange(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/000001_create_t.up.sql":   {Data: []byte("create table t (id integer primary key);")},
		"migrations/000001_create_t.down.sql": {Data: []byte("drop table t;")},
	}

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	db := openSQLite(t)

	if err := upOnce(t, db, fsys, log); err != nil {
		t.Fatalf("unexpected error on first run: %v", err)
	}
	if err := upOnce(t, db, fsys, log); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"msg":"DB is migrated"`) {
		t.Fatalf("expected migrated record, got %s", out)
	}
	if !strings.Contains(out, `"msg":"No migrations to apply"`) {
		t.Fatalf("expected no-change record, got %s", out)
	}
	if !strings.Contains(out, `"dbPath":"migration.sqlite"`) || !strings.Contains(out, `"version":1`) {
		t.Fatalf("expected caller fields and version, got %s", out)
	}
}

func TestUpReturnsBrokenMigrationError(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/000001_broken.up.sql":   {Data: []byte("create tabel t;")},
		"migrations/000001_broken.down.sql": {Data: []byte("")},
	}

	err := upOnce(t, openSQLite(t), fsys, slog.New(slog.DiscardHandler))
	if err == nil || !strings.Contains(err.Error(), "apply migrations") {
		t.Fatalf("expected apply error, got %v", err)
	}
}
