package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"summarystore/internal/config"
	"summarystore/internal/database"
	"summarystore/internal/domain"
	"summarystore/internal/inmemory"
	"summarystore/internal/postgres"
	"summarystore/internal/summary"
)

// Open builds the repository selected by cfg.Backend. The returned close
// func releases the backend and must be called once the repository is no
// longer used.
func Open(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
) (summary.Repository, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))

	switch backend {
	case config.BackendMemory:
		repo := inmemory.New(domain.CanonicalSummaries...)
		log.InfoContext(ctx, "In-memory repository is initialized",
			"backend", backend,
			"summaryCount", len(domain.CanonicalSummaries))

		return summary.WithLogging(repo, backend, log), noopClose, nil

	case config.BackendSQLite:
		db, err := database.New(ctx, cfg.DBPath, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite (dbPath = %s): %w", cfg.DBPath, err)
		}
		log.InfoContext(ctx, "DB is initialized",
			"backend", backend,
			"dbPath", cfg.DBPath)

		return summary.WithLogging(db, backend, log), db.Close, nil

	case config.BackendPostgres:
		repo, err := postgres.Open(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		log.InfoContext(ctx, "DB is initialized",
			"backend", backend)

		return summary.WithLogging(repo, backend, log), repo.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown backend (backend = %s)", backend)
}

func noopClose() error {
	return nil
}
