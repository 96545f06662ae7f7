package database

import (
	"context"
	"fmt"
	"strings"
	"summarystore/internal/domain"
	"summarystore/internal/summary"
)

func (d *Database) GetSummaries(ctx context.Context) ([]domain.Summary, error) {
	query := "select id, name from summaries"

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %w", summary.ErrRetrieval, err)
	}
	defer func() {
		if err = rows.Close(); err != nil {
			d.log.ErrorContext(ctx, "Failed to close rows",
				"error", err,
				"operation", "GetSummaries")
		}
	}()

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
