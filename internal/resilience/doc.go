// Package resilience groups the fault tolerance helpers that guard the
// summary store.
//
//   - circuitbreaker wraps github.com/sony/gobreaker and publishes breaker state
//   - retry re-runs operations that failed with a transient database error
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.SummaryStoreConfig())
//	s, err := circuitbreaker.Do(cb, func() (*entity.Summary, error) {
//	    return repo.Get(ctx, id)
//	})
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return performOperation()
//	})
package resilience
