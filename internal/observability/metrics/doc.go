// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size, in-flight)
//   - Business metrics (summaries created, updated, deleted, not found)
//   - Database query and connection pool metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "summarizer/internal/observability/metrics"
//
//	func createSummary(ctx context.Context) {
//	    start := time.Now()
//	    id, err := repo.Create(ctx, s)
//	    metrics.RecordDBQuery("insert_summary", time.Since(start))
//	    if err == nil {
//	        metrics.RecordSummaryOperation(metrics.OpCreate)
//	    }
//	}
package metrics
