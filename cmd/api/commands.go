package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"summarizer/internal/observability/logging"
	"summarizer/internal/observability/tracing"
	"summarizer/pkg/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

func newRootCmd() *cobra.Command {
	var (
		configFile string
		cfg        *config.Config
		logger     *slog.Logger
	)

	root := &cobra.Command{
		Use:           "summarizer",
		Short:         "Summary management REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
					return err
				}
			}
			loaded, err := config.Load()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "invalid configuration:", err)
				return err
			}
			if version != "" {
				loaded.Version = version
			}
			cfg = loaded
			logger = logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, logger)
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (overrides CONFIG_FILE)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return root.RunE(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the summary table and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(cmd.Context(), cfg, logger)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			// 設定の読み込みは不要
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), buildVersion())
				return err
			},
		},
	)
	return root
}

// buildVersion prefers the linker-stamped version over VERSION.
func buildVersion() string {
	if version != "" {
		return version
	}
	return config.GetEnvString("VERSION", "dev")
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing := tracing.Setup("summarizer", cfg.Version)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	st, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open storage", slog.Any("error", err))
		return err
	}
	defer st.Close(logger)

	return serve(ctx, cfg.HTTP, logger, newHandler(cfg, logger, st))
}

func runMigrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Storage.Driver == config.DriverMemory {
		logger.Info("memory storage has no schema to migrate")
		return nil
	}
	storage := cfg.Storage
	storage.AutoMigrate = true
	st, err := openStore(ctx, storage, logger)
	if err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		return err
	}
	st.Close(logger)
	logger.Info("migration completed", slog.String("driver", storage.Driver))
	return nil
}
