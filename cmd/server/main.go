package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/standings-service/internal/config"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, stop, config.Load())
	stop()
	os.Exit(code)
}

// run validates cfg, then serves until ctx ends. It returns the process exit code.
func run(ctx context.Context, stop context.CancelFunc, cfg config.Config) int {
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
	})
	if err := cfg.Validate(); err != nil {
		logging.Error(logger, "configuration rejected", err)
		return 1
	}
	if cfg.Auth.APIKey == "" {
		logging.Warn(logger, "API_KEY is not set, standings endpoints are open to anyone")
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		return 1
	}
	logging.Info(logger, "standings service starting",
		slog.String(logging.FieldSource, cfg.Source),
		slog.Any("leagues", cfg.Leagues),
		slog.Duration("refresh_interval", cfg.RefreshInterval),
	)
	srv.Run(ctx, stop)
	return 0
}
