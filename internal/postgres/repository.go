package postgres

import (
	"context"
	"fmt"
	"strings"
	"summarystore/internal/domain"
	"summarystore/internal/summary"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of *pgxpool.Pool the repository reads through.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Repository struct {
	q    Querier
	pool *pgxpool.Pool
}

func NewRepository(q Querier) *Repository {
	return &Repository{q: q}
}

// Close releases the pool when the Repository was built by Open.
func (r *Repository) Close() error {
	if r.pool != nil {
		r.pool.Close()
	}

	return nil
}

func (r *Repository) GetSummaries(ctx context.Context) ([]domain.Summary, error) {
	query := "select id, name from summaries"

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %w", summary.ErrRetrieval, err)
	}
	defer rows.Close()

	summaries := []domain.Summary{}
	for rows.Next() {
		var s domain.Summary
		if err = rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("%w: scan row: %w", summary.ErrRetrieval, err)
		}

		s.Name = strings.TrimSpace(s.Name)

		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %w", summary.ErrRetrieval, err)
	}

	return summaries, nil
}
