package summary

import (
	"context"
	"log/slog"
	"summarystore/internal/domain"
	"time"
)

type loggingRepository struct {
	inner   Repository
	backend string
	log     *slog.Logger
}

// WithLogging decorates repo so that every read is logged. Results pass
// through untouched.
func WithLogging(repo Repository, backend string, log *slog.Logger) Repository {
	return &loggingRepository{
		inner:   repo,
		backend: backend,
		log:     log,
	}
}

func (r *loggingRepository) GetSummaries(ctx context.Context) ([]domain.Summary, error) {
	start := time.Now()

	summaries, err := r.inner.GetSummaries(ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to get summaries",
			"error", err,
			"backend", r.backend,
			"durationMs", time.Since(start).Milliseconds())

		return nil, err
	}

	r.log.DebugContext(ctx, "Summaries are fetched",
		"backend", r.backend,
		"count", len(summaries),
		"durationMs", time.Since(start).Milliseconds())

	return summaries, nil
}
