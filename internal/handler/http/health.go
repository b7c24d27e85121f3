// Package http holds the HTTP plumbing shared by every route: middleware,
// Prometheus metrics and the health, readiness and liveness endpoints.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"summarizer/internal/handler/http/respond"
	"summarizer/internal/observability/metrics"
)

// Check statuses.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Breaker is the view of a circuit breaker the health check needs.
type Breaker interface {
	Name() string
	IsOpen() bool
}

// HealthHandler reports database connectivity, pool statistics and the
// storage circuit breaker state.
// DB is nil for the in-memory store; the database check then reports the driver.
type HealthHandler struct {
	DB      *sql.DB
	Driver  string
	Version string
	Breaker Breaker
}

// ServeHTTP returns 200 when every check passes (degraded counts as passing)
// and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)

	// データベース接続チェック
	switch {
	case h.DB != nil:
		checks["database"] = h.checkDatabase(ctx)
	case h.Driver == "memory":
		checks["database"] = CheckStatus{Status: StatusHealthy, Message: "in-memory store"}
	default:
		checks["database"] = CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
	}

	if h.Breaker != nil {
		checks["circuit_breaker"] = h.checkBreaker()
	}

	status := StatusHealthy
	statusCode := http.StatusOK
	for _, c := range checks {
		if c.Status == StatusUnhealthy {
			status = StatusUnhealthy
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkDatabase pings the database and reports connection pool statistics.
// The pool gauges exported on /metrics are refreshed as a side effect.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		slog.Default().Warn("health: database ping failed",
			slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: StatusUnhealthy, Message: "ping failed"}
	}

	stats := h.DB.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)

	details := map[string]any{
		"driver":               h.Driver,
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	// MaxOpenConnections == 0 は無制限
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}

	return CheckStatus{Status: StatusHealthy, Details: details}
}

func (h *HealthHandler) checkBreaker() CheckStatus {
	details := map[string]any{"name": h.Breaker.Name()}
	if h.Breaker.IsOpen() {
		return CheckStatus{Status: StatusUnhealthy, Message: "circuit open", Details: details}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// ReadyHandler handles readiness probe requests.
// It returns 503 until the database answers a ping; a nil DB is ready.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			slog.Default().Warn("ready: database ping failed",
				slog.String("error", respond.SanitizeError(err)))
			http.Error(w, "database not ready", http.StatusServiceUnavailable)
			return
		}
	}

	writePlain(w, "ready")
}

// LiveHandler handles liveness probe requests. It always returns 200.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writePlain(w, "alive")
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response", slog.Any("error", err))
	}
}
