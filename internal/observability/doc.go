// Package observability groups the logging, metrics and tracing subpackages.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus registry and recorders
//   - tracing: OpenTelemetry provider setup and HTTP middleware
//
// Example usage:
//
//	import (
//	    "summarizer/internal/observability/logging"
//	    "summarizer/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordSummaryOperation(metrics.OpCreate)
//	}
package observability
