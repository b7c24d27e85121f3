package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBreaker struct{ open bool }

func (b stubBreaker) Name() string { return "summary-store" }
func (b stubBreaker) IsOpen() bool { return b.open }

func serveHealth(t *testing.T, h *HealthHandler) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "healthy database",
			setupMock:      func(mock sqlmock.Sqlmock) { mock.ExpectPing() },
			expectedStatus: http.StatusOK,
			expectedState:  StatusHealthy,
		},
		{
			name:           "database connection error",
			setupMock:      func(mock sqlmock.Sqlmock) { mock.ExpectPing().WillReturnError(sql.ErrConnDone) },
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			db.SetMaxOpenConns(10)
			tt.setupMock(mock)

			rec, resp := serveHealth(t, &HealthHandler{DB: db, Driver: "postgres", Version: "test-version"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedState, resp.Status)
			assert.Equal(t, "test-version", resp.Version)
			assert.NotEmpty(t, resp.Timestamp)
			assert.Contains(t, resp.Checks, "database")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_PingErrorNotLeaked(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	_, resp := serveHealth(t, &HealthHandler{DB: db})

	assert.Equal(t, "ping failed", resp.Checks["database"].Message)
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	rec, resp := serveHealth(t, &HealthHandler{Version: "test-version"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, "not configured", resp.Checks["database"].Message)
}

func TestHealthHandler_MemoryDriver(t *testing.T) {
	rec, resp := serveHealth(t, &HealthHandler{Driver: "memory"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusHealthy, resp.Checks["database"].Status)
}

func TestHealthHandler_MaxOpenConnectionsZero(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(0)
	mock.ExpectPing()

	rec, resp := serveHealth(t, &HealthHandler{DB: db})

	// degraded は稼働中扱い
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusHealthy, resp.Status)

	dbCheck := resp.Checks["database"]
	assert.Equal(t, StatusDegraded, dbCheck.Status)
	assert.Equal(t, float64(0), dbCheck.Details["max_open_connections"])
	assert.NotContains(t, dbCheck.Details, "utilization_percent")
}

func TestHealthHandler_Utilization(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(10)
	mock.ExpectPing()

	_, resp := serveHealth(t, &HealthHandler{DB: db})

	dbCheck := resp.Checks["database"]
	assert.Equal(t, StatusHealthy, dbCheck.Status)
	assert.Equal(t, float64(0), dbCheck.Details["utilization_percent"])
}

func TestHealthHandler_CircuitBreaker(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		rec, resp := serveHealth(t, &HealthHandler{Driver: "memory", Breaker: stubBreaker{}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, StatusHealthy, resp.Checks["circuit_breaker"].Status)
	})

	t.Run("open", func(t *testing.T) {
		rec, resp := serveHealth(t, &HealthHandler{Driver: "memory", Breaker: stubBreaker{open: true}})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "circuit open", resp.Checks["circuit_breaker"].Message)
	})
}

func TestHealthHandler_CacheControl(t *testing.T) {
	rec := httptest.NewRecorder()
	(&HealthHandler{Driver: "memory"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

/* ───────── Ready / Live ───────── */

func TestReadyHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		expectedStatus int
	}{
		{name: "ready", setupMock: func(m sqlmock.Sqlmock) { m.ExpectPing() }, expectedStatus: http.StatusOK},
		{name: "database not ready", setupMock: func(m sqlmock.Sqlmock) { m.ExpectPing().WillReturnError(sql.ErrConnDone) }, expectedStatus: http.StatusServiceUnavailable},
		{name: "slow ping", setupMock: func(m sqlmock.Sqlmock) { m.ExpectPing().WillDelayFor(3 * time.Second) }, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			tt.setupMock(mock)

			rec := httptest.NewRecorder()
			(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestReadyHandler_InMemory(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
