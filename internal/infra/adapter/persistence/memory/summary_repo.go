// Package memory implements repository.SummaryRepository in process memory.
// It backs STORAGE_DRIVER=memory and loses every record on restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"summarizer/internal/domain/entity"
	"summarizer/internal/repository"
)

type SummaryRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]entity.Summary
}

func NewSummaryRepo() repository.SummaryRepository {
	return &SummaryRepo{rows: make(map[int64]entity.Summary)}
}

func (repo *SummaryRepo) Create(ctx context.Context, s *entity.Summary) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	row := *s
	row.ID = repo.nextID
	repo.rows[row.ID] = row
	return row.ID, nil
}

func (repo *SummaryRepo) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	row, ok := repo.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (repo *SummaryRepo) List(ctx context.Context) ([]*entity.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Summary, 0, len(repo.rows))
	for _, row := range repo.rows {
		row := row
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (repo *SummaryRepo) Update(ctx context.Context, id int64, in entity.SummaryUpdate) (*entity.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	row, ok := repo.rows[id]
	if !ok {
		return nil, nil
	}
	row.URL = in.URL
	row.Summary = in.Summary
	repo.rows[id] = row
	return &row, nil
}

func (repo *SummaryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.rows[id]; !ok {
		return 0, nil
	}
	delete(repo.rows, id)
	return id, nil
}
