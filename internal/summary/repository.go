package summary

import (
	"context"
	"errors"
	"summarystore/internal/domain"
)

// ErrRetrieval is wrapped by every GetSummaries failure, whatever the cause.
var ErrRetrieval = errors.New("retrieval failed")

// Repository reads every summary held by a backing store.
//
// GetSummaries returns all summaries available at call time in no
// particular order. On success the slice is non-nil and owned by the
// caller; an empty store yields an empty slice. On failure the slice is
// nil and the error wraps ErrRetrieval.
type Repository interface {
	GetSummaries(ctx context.Context) ([]domain.Summary, error)
}

// Result is the outcome of an asynchronous GetSummaries call.
type Result struct {
	Summaries []domain.Summary
	Err       error
}

// GetSummariesAsync starts the read on its own goroutine and returns at
// once. The channel yields exactly one Result and is then closed; it is
// buffered so an abandoned channel does not leak the goroutine.
func GetSummariesAsync(ctx context.Context, repo Repository) <-chan Result {
	resCh := make(chan Result, 1)

	go func() {
		defer close(resCh)

		summaries, err := repo.GetSummaries(ctx)
		if err != nil {
			resCh <- Result{Err: err}
			return
		}

		resCh <- Result{Summaries: summaries}
	}()

	return resCh
}
