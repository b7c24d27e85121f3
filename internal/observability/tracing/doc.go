// Package tracing provides OpenTelemetry tracing integration.
//
// Setup installs an SDK tracer provider so every request gets a real trace ID,
// Middleware opens a server span per HTTP request, and GetTracer is used by the
// use case layer to open child spans around repository calls.
//
// Example usage:
//
//	import "summarizer/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.Setup("summarizer", version)
//	    defer shutdown(context.Background())
//	}
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "summary.Get")
//	    defer span.End()
//	}
package tracing
