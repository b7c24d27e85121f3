// Package config loads service configuration from an optional YAML file,
// a .env file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config is the full service configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`

	SwaggerEnabled bool   `yaml:"swagger_enabled"`
	Version        string `yaml:"version"`
}

type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

type StorageConfig struct {
	Driver         string `yaml:"driver"`
	DatabaseURL    string `yaml:"database_url"`
	PostgresDriver string `yaml:"postgres_driver"` // pgx or pq
	SQLitePath     string `yaml:"sqlite_path"`
	// AutoMigrate applies the schema on startup.
	AutoMigrate bool `yaml:"auto_migrate"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// CORSConfig enables CORS when AllowedOrigins is non-empty.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		Storage: StorageConfig{
			Driver:          DriverPostgres,
			PostgresDriver:  "pgx",
			SQLitePath:      "summarizer.db",
			AutoMigrate:     true,
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
		Log:            LogConfig{Level: "info", Format: "json"},
		CORS:           CORSConfig{MaxAge: 86400},
		SwaggerEnabled: true,
		Version:        "dev",
	}
}

// Load builds the configuration.
//
//  1. defaults
//  2. the YAML file named by CONFIG_FILE, when set
//  3. environment variables (a .env file in the working directory is loaded first)
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := GetEnvString("CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	slog.Debug("configuration file loaded", slog.String("path", path))
	return nil
}

// applyEnv overrides fields whose environment variable is set.
func (c *Config) applyEnv() {
	c.HTTP.Addr = GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ReadHeaderTimeout = GetEnvDuration("READ_HEADER_TIMEOUT", c.HTTP.ReadHeaderTimeout)
	c.HTTP.RequestTimeout = GetEnvDuration("REQUEST_TIMEOUT", c.HTTP.RequestTimeout)
	c.HTTP.ShutdownTimeout = GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.MaxBodyBytes = GetEnvInt64("MAX_BODY_BYTES", c.HTTP.MaxBodyBytes)

	c.Storage.Driver = strings.ToLower(GetEnvString("STORAGE_DRIVER", c.Storage.Driver))
	c.Storage.DatabaseURL = GetEnvString("DATABASE_URL", c.Storage.DatabaseURL)
	c.Storage.PostgresDriver = strings.ToLower(GetEnvString("POSTGRES_DRIVER", c.Storage.PostgresDriver))
	c.Storage.SQLitePath = GetEnvString("SQLITE_PATH", c.Storage.SQLitePath)
	c.Storage.AutoMigrate = GetEnvBool("AUTO_MIGRATE", c.Storage.AutoMigrate)
	c.Storage.MaxOpenConns = GetEnvInt("DB_MAX_OPEN_CONNS", c.Storage.MaxOpenConns)
	c.Storage.MaxIdleConns = GetEnvInt("DB_MAX_IDLE_CONNS", c.Storage.MaxIdleConns)
	c.Storage.ConnMaxLifetime = GetEnvDuration("DB_CONN_MAX_LIFETIME", c.Storage.ConnMaxLifetime)
	c.Storage.ConnMaxIdleTime = GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.Storage.ConnMaxIdleTime)

	c.Log.Level = GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = GetEnvString("LOG_FORMAT", c.Log.Format)

	c.CORS.AllowedOrigins = GetEnvStringList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	c.CORS.AllowedMethods = GetEnvStringList("CORS_ALLOWED_METHODS", c.CORS.AllowedMethods)
	c.CORS.AllowedHeaders = GetEnvStringList("CORS_ALLOWED_HEADERS", c.CORS.AllowedHeaders)
	c.CORS.MaxAge = GetEnvInt("CORS_MAX_AGE", c.CORS.MaxAge)

	c.SwaggerEnabled = GetEnvBool("SWAGGER_ENABLED", c.SwaggerEnabled)
	c.Version = GetEnvString("VERSION", c.Version)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if err := ValidatePositiveDuration(c.HTTP.ReadHeaderTimeout); err != nil {
		errs = append(errs, fmt.Errorf("READ_HEADER_TIMEOUT: %w", err))
	}
	if err := ValidateNonNegativeDuration(c.HTTP.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT: %w", err))
	}
	if err := ValidatePositiveDuration(c.HTTP.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}
	if c.HTTP.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be non-negative, got %d", c.HTTP.MaxBodyBytes))
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres"))
		}
		switch c.Storage.PostgresDriver {
		case "pgx", "pq", "postgres":
		default:
			errs = append(errs, fmt.Errorf("POSTGRES_DRIVER must be pgx or pq, got %q", c.Storage.PostgresDriver))
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required when STORAGE_DRIVER=sqlite"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be postgres, sqlite or memory, got %q", c.Storage.Driver))
	}

	if c.Storage.MaxOpenConns < 0 || c.Storage.MaxIdleConns < 0 {
		errs = append(errs, errors.New("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must be non-negative"))
	}
	if c.Storage.MaxOpenConns > 0 && c.Storage.MaxIdleConns > c.Storage.MaxOpenConns {
		errs = append(errs, fmt.Errorf("DB_MAX_IDLE_CONNS (%d) exceeds DB_MAX_OPEN_CONNS (%d)",
			c.Storage.MaxIdleConns, c.Storage.MaxOpenConns))
	}

	if c.CORS.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("CORS_MAX_AGE must be non-negative, got %d", c.CORS.MaxAge))
	}

	return errors.Join(errs...)
}

// DSN returns the data source name for the selected driver.
func (s StorageConfig) DSN() string {
	if s.Driver == DriverSQLite {
		return s.SQLitePath
	}
	return s.DatabaseURL
}
