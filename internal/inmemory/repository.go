package inmemory

import (
	"context"
	"fmt"
	"summarystore/internal/domain"
	"summarystore/internal/summary"
	"sync"
)

type Repository struct {
	mu        sync.RWMutex
	summaries []domain.Summary
}

// New keeps its own copy of summaries.
func New(summaries ...domain.Summary) *Repository {
	return &Repository{
		summaries: append(make([]domain.Summary, 0, len(summaries)), summaries...),
	}
}

func (r *Repository) GetSummaries(ctx context.Context) ([]domain.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", summary.ErrRetrieval, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]domain.Summary, 0, len(r.summaries)), r.summaries...), nil
}
