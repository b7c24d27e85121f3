// Package postgres implements repository.SummaryRepository on PostgreSQL
// through database/sql. The driver (pgx or lib/pq) is chosen by infra/db.Open.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"summarizer/internal/domain/entity"
	"summarizer/internal/repository"
)

type SummaryRepo struct {
	db *sql.DB
}

func NewSummaryRepo(db *sql.DB) repository.SummaryRepository {
	return &SummaryRepo{db: db}
}

func (repo *SummaryRepo) Create(ctx context.Context, s *entity.Summary) (int64, error) {
	const query = `
INSERT INTO text_summary
       (url, summary, created_at)
VALUES ($1, $2, $3)
RETURNING id`
	var id int64
	if err := repo.db.QueryRowContext(ctx, query, s.URL, s.Summary, s.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	return id, nil
}

func (repo *SummaryRepo) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	const query = `
SELECT id, url, summary, created_at
FROM text_summary
WHERE id = $1
LIMIT 1`
	var s entity.Summary
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.URL, &s.Summary, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &s, nil
}

func (repo *SummaryRepo) List(ctx context.Context) ([]*entity.Summary, error) {
	const query = `
SELECT id, url, summary, created_at
FROM text_summary
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]*entity.Summary, 0, 16)
	for rows.Next() {
		var s entity.Summary
		if err := rows.Scan(&s.ID, &s.URL, &s.Summary, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return summaries, nil
}

// Update returns (nil, nil) when no row has the id.
func (repo *SummaryRepo) Update(ctx context.Context, id int64, in entity.SummaryUpdate) (*entity.Summary, error) {
	const query = `
UPDATE text_summary SET
       url     = $1,
       summary = $2
WHERE id = $3
RETURNING id, url, summary, created_at`
	var s entity.Summary
	err := repo.db.QueryRowContext(ctx, query, in.URL, in.Summary, id).
		Scan(&s.ID, &s.URL, &s.Summary, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return &s, nil
}

// Delete returns the removed id, or 0 when no row matched.
func (repo *SummaryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM text_summary WHERE id = $1 RETURNING id`
	var deleted int64
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Delete: %w", err)
	}
	return deleted, nil
}
