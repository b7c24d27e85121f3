package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installRecorder(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(sdktrace.NewTracerProvider()) })
	return exporter, tp
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter, tp := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/summaries/12/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	span := spans[0]
	if span.Name != "GET /summaries/:id" {
		t.Errorf("span name = %q, want %q", span.Name, "GET /summaries/:id")
	}

	attrs := attrMap(span.Attributes)
	if got := attrs["http.method"].AsString(); got != "GET" {
		t.Errorf("http.method = %q, want GET", got)
	}
	if got := attrs["http.path"].AsString(); got != "/summaries/12/" {
		t.Errorf("http.path = %q, want /summaries/12/", got)
	}
	if got := attrs["http.status_code"].AsInt64(); got != 200 {
		t.Errorf("http.status_code = %d, want 200", got)
	}
}

func TestMiddleware_AddsTraceIDToResponse(t *testing.T) {
	installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/summaries/", nil))

	traceID := rr.Header().Get(TraceIDHeader)
	if len(traceID) != 32 {
		t.Errorf("trace ID %q should be 32 hex characters", traceID)
	}
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter, tp := installRecorder(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	const parentTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/summaries/", nil)
	req.Header.Set("traceparent", "00-"+parentTraceID+"-00f067aa0ba902b7-01")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != parentTraceID {
		t.Errorf("trace ID = %s, want %s", got, parentTraceID)
	}
	if got := rr.Header().Get(TraceIDHeader); got != parentTraceID {
		t.Errorf("X-Trace-Id = %s, want %s", got, parentTraceID)
	}
}

func TestMiddleware_MarksErrorSpansFor5xx(t *testing.T) {
	exporter, tp := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/summaries/", nil))
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if !attrMap(spans[0].Attributes)["error"].AsBool() {
		t.Error("expected error attribute on 5xx span")
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("status code = %v, want Error", spans[0].Status.Code)
	}
}

func TestMiddleware_NoErrorAttributeFor4xx(t *testing.T) {
	exporter, tp := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/summaries/999/", nil))
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if _, ok := attrMap(spans[0].Attributes)["error"]; ok {
		t.Error("4xx responses should not be marked as errors")
	}
}

func TestSetup_InstallsProvider(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	shutdown := Setup("summarizer-test", "test", sdktrace.NewSimpleSpanProcessor(exporter))
	t.Cleanup(func() {
		_ = shutdown(context.Background())
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})

	_, span := GetTracer().Start(context.Background(), "unit")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "unit" {
		t.Errorf("span name = %q, want unit", spans[0].Name)
	}
}
