// Package db opens the SQL connection pool for the configured storage driver
// and applies the schema.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL flavour spoken by a pool.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Postgres driver names registered with database/sql.
const (
	DriverPgx = "pgx"      // github.com/jackc/pgx/v5/stdlib
	DriverPq  = "postgres" // github.com/lib/pq
)

// ErrMissingDSN is returned when no data source name is configured.
var ErrMissingDSN = errors.New("database DSN not set")

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Options selects the driver and pool settings for Open.
type Options struct {
	Dialect Dialect
	// DSN is DATABASE_URL for postgres or a file path for sqlite.
	DSN string
	// PostgresDriver is DriverPgx (default) or DriverPq.
	PostgresDriver string
	Pool           ConnectionConfig
	PingTimeout    time.Duration
}

// Open creates and configures a connection pool and verifies it with a ping.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.DSN == "" {
		return nil, ErrMissingDSN
	}

	driver, dsn, err := driverFor(opts)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	pool := opts.Pool
	if opts.Dialect == SQLite && isMemoryDSN(opts.DSN) {
		// :memory: はコネクションごとに別DBになる
		pool.MaxOpenConns = 1
		pool.MaxIdleConns = 1
		pool.ConnMaxLifetime = 0
		pool.ConnMaxIdleTime = 0
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", driver),
		slog.Int("max_open_conns", pool.MaxOpenConns),
		slog.Int("max_idle_conns", pool.MaxIdleConns),
		slog.Duration("conn_max_lifetime", pool.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", pool.ConnMaxIdleTime))

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	slog.Info("database connection established successfully", slog.String("driver", driver))
	return db, nil
}

func driverFor(opts Options) (driver, dsn string, err error) {
	switch opts.Dialect {
	case Postgres:
		switch opts.PostgresDriver {
		case "", DriverPgx:
			return DriverPgx, opts.DSN, nil
		case DriverPq, "pq":
			return DriverPq, opts.DSN, nil
		default:
			return "", "", fmt.Errorf("unknown postgres driver %q", opts.PostgresDriver)
		}
	case SQLite:
		return "sqlite", sqliteDSN(opts.DSN), nil
	default:
		return "", "", fmt.Errorf("unknown dialect %q", opts.Dialect)
	}
}

// sqliteDSN enables foreign keys and a busy timeout unless the caller set pragmas.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func isMemoryDSN(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
