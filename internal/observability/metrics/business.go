package metrics

import (
	"time"
)

// Summary operation labels.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordSummaryOperation records a successful summary mutation.
// Operation should be one of OpCreate, OpUpdate or OpDelete.
func RecordSummaryOperation(operation string) {
	SummaryOperationsTotal.WithLabelValues(operation).Inc()
}

// RecordSummaryNotFound records a lookup for a summary id that does not exist.
func RecordSummaryNotFound() {
	SummaryNotFoundTotal.Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_summary", "insert_summary").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}

// SetCircuitBreakerState publishes the state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordDBRetry records one retry of a database operation.
func RecordDBRetry(operation string) {
	DBRetriesTotal.WithLabelValues(operation).Inc()
}
