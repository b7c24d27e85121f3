package summary

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"summarizer/internal/domain/entity"
	"summarizer/internal/observability/metrics"
	"summarizer/internal/observability/tracing"
	"summarizer/internal/repository"
)

// CreateInput represents the input parameters for creating a new summary.
type CreateInput struct {
	URL string
}

// UpdateInput represents the input parameters for updating an existing summary.
// Both fields replace the stored values.
type UpdateInput struct {
	URL     string
	Summary string
}

// Service provides summary management use cases.
// It delegates persistence to the repository and never holds state between calls.
type Service struct {
	Repo repository.SummaryRepository

	// Now returns the creation timestamp. Defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create stores a new summary for the given URL and returns it with its assigned id.
// The URL is canonicalised before storage; the summary text starts empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (out *entity.Summary, err error) {
	ctx, span := startSpan(ctx, "summary.Create")
	defer func() { endSpan(span, err) }()

	canonical, err := entity.CanonicalURL(in.URL)
	if err != nil {
		return nil, err
	}

	sum := &entity.Summary{
		URL:       canonical,
		CreatedAt: s.now(),
	}

	start := time.Now()
	id, err := s.Repo.Create(ctx, sum)
	metrics.RecordDBQuery("insert_summary", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("create summary: %w", err)
	}
	sum.ID = id
	span.SetAttributes(attribute.Int64("summary.id", id))
	metrics.RecordSummaryOperation(metrics.OpCreate)
	return sum, nil
}

// Get retrieves a single summary by its ID.
// Returns ErrInvalidSummaryID if the ID is not positive.
// Returns ErrSummaryNotFound if the summary does not exist.
func (s *Service) Get(ctx context.Context, id int64) (out *entity.Summary, err error) {
	ctx, span := startSpan(ctx, "summary.Get", attribute.Int64("summary.id", id))
	defer func() { endSpan(span, err) }()

	return s.get(ctx, id)
}

// List retrieves all summaries. An empty store yields an empty, non-nil slice.
func (s *Service) List(ctx context.Context) (out []*entity.Summary, err error) {
	ctx, span := startSpan(ctx, "summary.List")
	defer func() { endSpan(span, err) }()

	start := time.Now()
	summaries, err := s.Repo.List(ctx)
	metrics.RecordDBQuery("select_summaries", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	if summaries == nil {
		summaries = []*entity.Summary{}
	}
	span.SetAttributes(attribute.Int("summary.count", len(summaries)))
	return summaries, nil
}

// Update replaces the url and summary text of an existing summary.
// The existence check and the write are two separate repository calls;
// the write is never issued for a missing id.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (out *entity.Summary, err error) {
	ctx, span := startSpan(ctx, "summary.Update", attribute.Int64("summary.id", id))
	defer func() { endSpan(span, err) }()

	canonical, err := entity.CanonicalURL(in.URL)
	if err != nil {
		return nil, err
	}

	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	start := time.Now()
	updated, err := s.Repo.Update(ctx, id, entity.SummaryUpdate{URL: canonical, Summary: in.Summary})
	metrics.RecordDBQuery("update_summary", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("update summary: %w", err)
	}
	if updated == nil {
		// 事前チェック後に削除された
		metrics.RecordSummaryNotFound()
		return nil, ErrSummaryNotFound
	}
	metrics.RecordSummaryOperation(metrics.OpUpdate)
	return updated, nil
}

// Delete removes a summary and returns the record as it was before removal.
// Returns ErrSummaryNotFound without calling Repo.Delete when the id is unknown.
func (s *Service) Delete(ctx context.Context, id int64) (out *entity.Summary, err error) {
	ctx, span := startSpan(ctx, "summary.Delete", attribute.Int64("summary.id", id))
	defer func() { endSpan(span, err) }()

	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	_, err = s.Repo.Delete(ctx, id)
	metrics.RecordDBQuery("delete_summary", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("delete summary: %w", err)
	}
	metrics.RecordSummaryOperation(metrics.OpDelete)
	return existing, nil
}

func (s *Service) get(ctx context.Context, id int64) (*entity.Summary, error) {
	if id <= 0 {
		return nil, ErrInvalidSummaryID
	}

	start := time.Now()
	sum, err := s.Repo.Get(ctx, id)
	metrics.RecordDBQuery("select_summary", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	if sum == nil {
		metrics.RecordSummaryNotFound()
		return nil, ErrSummaryNotFound
	}
	return sum, nil
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracing.GetTracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
