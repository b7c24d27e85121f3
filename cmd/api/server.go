package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	hhttp "summarizer/internal/handler/http"
	"summarizer/internal/handler/http/middleware"
	"summarizer/internal/handler/http/requestid"
	hsummary "summarizer/internal/handler/http/summary"
	"summarizer/internal/infra/adapter/persistence/memory"
	pgRepo "summarizer/internal/infra/adapter/persistence/postgres"
	"summarizer/internal/infra/adapter/persistence/resilient"
	liteRepo "summarizer/internal/infra/adapter/persistence/sqlite"
	"summarizer/internal/infra/db"
	"summarizer/internal/observability/tracing"
	"summarizer/internal/repository"
	"summarizer/internal/resilience/circuitbreaker"
	"summarizer/internal/resilience/retry"
	sumUC "summarizer/internal/usecase/summary"
	"summarizer/pkg/config"
)

// store bundles the repository with the pool and breaker behind it.
// DB and Breaker are nil for the in-memory driver.
type store struct {
	Driver  string
	DB      *sql.DB
	Repo    repository.SummaryRepository
	Breaker *circuitbreaker.CircuitBreaker
}

// openStore connects the configured storage driver and applies the schema
// when AutoMigrate is set.
func openStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*store, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn("using in-memory storage, summaries are lost on restart")
		return &store{Driver: cfg.Driver, Repo: memory.NewSummaryRepo()}, nil
	}

	dialect := db.Dialect(cfg.Driver)
	database, err := db.Open(ctx, db.Options{
		Dialect:        dialect,
		DSN:            cfg.DSN(),
		PostgresDriver: cfg.PostgresDriver,
		Pool: db.ConnectionConfig{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		},
	})
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.MigrateUp(ctx, database, dialect); err != nil {
			_ = database.Close()
			return nil, err
		}
	}

	var base repository.SummaryRepository
	switch dialect {
	case db.Postgres:
		base = pgRepo.NewSummaryRepo(database)
	case db.SQLite:
		base = liteRepo.NewSummaryRepo(database)
	default:
		_ = database.Close()
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	cb := circuitbreaker.New(circuitbreaker.SummaryStoreConfig())
	return &store{
		Driver:  cfg.Driver,
		DB:      database,
		Repo:    resilient.NewSummaryRepo(base, cb, retry.DBConfig()),
		Breaker: cb,
	}, nil
}

func (s *store) Close(logger *slog.Logger) {
	if s.DB == nil {
		return
	}
	if err := s.DB.Close(); err != nil {
		logger.Error("failed to close database", slog.Any("error", err))
	}
}

// newHandler registers every route and wraps the mux in the middleware chain.
// Order (outermost first): CORS → request ID → tracing → metrics → logging → recover → timeout → body limit
func newHandler(cfg *config.Config, logger *slog.Logger, st *store) http.Handler {
	mux := http.NewServeMux()

	hsummary.Register(mux, &sumUC.Service{Repo: st.Repo})

	health := &hhttp.HealthHandler{DB: st.DB, Driver: st.Driver, Version: cfg.Version}
	if st.Breaker != nil {
		health.Breaker = st.Breaker
	}
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: st.DB})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	if cfg.SwaggerEnabled {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	return hhttp.Chain(mux,
		middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
			MaxAge:         cfg.CORS.MaxAge,
			Logger:         logger,
		}),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes),
	)
}

// serve runs the server until ctx is cancelled, then drains in-flight
// requests for at most ShutdownTimeout.
func serve(ctx context.Context, cfg config.HTTPConfig, logger *slog.Logger, handler http.Handler) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return serveListener(ctx, ln, cfg, logger, handler)
}

func serveListener(ctx context.Context, ln net.Listener, cfg config.HTTPConfig, logger *slog.Logger, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout, // Prevent Slowloris attacks
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}
