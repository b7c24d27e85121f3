// Package resilient decorates a repository.SummaryRepository with a circuit
// breaker and retries for transient storage failures.
package resilient

import (
	"context"

	"summarizer/internal/domain/entity"
	"summarizer/internal/observability/metrics"
	"summarizer/internal/repository"
	"summarizer/internal/resilience/circuitbreaker"
	"summarizer/internal/resilience/retry"
)

// SummaryRepo guards every call with the breaker. Reads and Update are
// retried; Create and Delete run once because a lost reply cannot be
// told apart from a failed write.
type SummaryRepo struct {
	next  repository.SummaryRepository
	cb    *circuitbreaker.CircuitBreaker
	retry retry.Config
}

func NewSummaryRepo(next repository.SummaryRepository, cb *circuitbreaker.CircuitBreaker, cfg retry.Config) *SummaryRepo {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &SummaryRepo{next: next, cb: cb, retry: cfg}
}

// Breaker exposes the breaker for health reporting.
func (r *SummaryRepo) Breaker() *circuitbreaker.CircuitBreaker { return r.cb }

func (r *SummaryRepo) Create(ctx context.Context, s *entity.Summary) (int64, error) {
	return circuitbreaker.Do(r.cb, func() (int64, error) {
		return r.next.Create(ctx, s)
	})
}

func (r *SummaryRepo) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	return withRetry(ctx, r, "get", func() (*entity.Summary, error) {
		return r.next.Get(ctx, id)
	})
}

func (r *SummaryRepo) List(ctx context.Context) ([]*entity.Summary, error) {
	return withRetry(ctx, r, "list", func() ([]*entity.Summary, error) {
		return r.next.List(ctx)
	})
}

func (r *SummaryRepo) Update(ctx context.Context, id int64, in entity.SummaryUpdate) (*entity.Summary, error) {
	return withRetry(ctx, r, "update", func() (*entity.Summary, error) {
		return r.next.Update(ctx, id, in)
	})
}

func (r *SummaryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return circuitbreaker.Do(r.cb, func() (int64, error) {
		return r.next.Delete(ctx, id)
	})
}

// withRetry runs fn through the breaker, retrying transient errors.
// An open breaker is not retried.
func withRetry[T any](ctx context.Context, r *SummaryRepo, op string, fn func() (T, error)) (T, error) {
	var out T
	attempt := 0
	err := retry.WithBackoff(ctx, r.retry, func() error {
		attempt++
		if attempt > 1 {
			metrics.RecordDBRetry(op)
		}
		v, err := circuitbreaker.Do(r.cb, fn)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

var _ repository.SummaryRepository = (*SummaryRepo)(nil)
