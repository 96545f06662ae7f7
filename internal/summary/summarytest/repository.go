// Package summarytest provides a controllable summary.Repository for tests.
package summarytest

import (
	"context"
	"fmt"
	"summarystore/internal/domain"
	"summarystore/internal/summary"
	"sync"
	"time"
)

// Repository serves Summaries after Delay, or fails with Err when set.
type Repository struct {
	Summaries []domain.Summary
	Err       error
	Delay     time.Duration

	mu    sync.Mutex
	calls int
}

func (r *Repository) GetSummaries(ctx context.Context) ([]domain.Summary, error) {
	r.mu.Lock()
	r.calls++
	delay, injected := r.Delay, r.Err
	r.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: wait: %w", summary.ErrRetrieval, ctx.Err())
		}
	}

	if injected != nil {
		return nil, fmt.Errorf("%w: %w", summary.ErrRetrieval, injected)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return append(make([]domain.Summary, 0, len(r.Summaries)), r.Summaries...), nil
}

// Calls reports how many times GetSummaries was invoked.
func (r *Repository) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls
}
