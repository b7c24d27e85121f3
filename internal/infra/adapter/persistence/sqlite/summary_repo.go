// Package sqlite implements repository.SummaryRepository on SQLite using the
// pure-Go modernc.org/sqlite driver.
package sqlite

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
VALUES (?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query, s.URL, s.Summary, s.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Create: LastInsertId: %w", err)
	}
	return id, nil
}

func (repo *SummaryRepo) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	const query = `
SELECT id, url, summary, created_at
FROM text_summary
WHERE id = ?
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
ORDER BY id ASC`
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

// Update writes the row and reads it back; (nil, nil) when no row has the id.
func (repo *SummaryRepo) Update(ctx context.Context, id int64, in entity.SummaryUpdate) (*entity.Summary, error) {
	const query = `
UPDATE text_summary SET
       url     = ?,
       summary = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, in.URL, in.Summary, id)
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return repo.Get(ctx, id)
}

// Delete returns the removed id, or 0 when no row matched.
func (repo *SummaryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM text_summary WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return 0, nil
	}
	return id, nil
}
