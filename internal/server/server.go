package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"

	appstandings "github.com/preston-bernstein/standings-service/internal/app/standings"
	"github.com/preston-bernstein/standings-service/internal/config"
	httpserver "github.com/preston-bernstein/standings-service/internal/http"
	"github.com/preston-bernstein/standings-service/internal/http/handlers"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/metrics"
	"github.com/preston-bernstein/standings-service/internal/poller"
	"github.com/preston-bernstein/standings-service/internal/sources"
	"github.com/preston-bernstein/standings-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.SnapshotStore
	service       *appstandings.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured league sources and poller.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithSources(cfg, logger, nil, nil)
}

func newServerWithSources(cfg config.Config, logger *slog.Logger, srcs []sources.Source, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if srcs == nil {
		built, err := newSourceFactory(logger, recorder).build(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "build sources")
		}
		srcs = built
	}

	snapshotStore := store.NewSnapshotStore(cfg.Leagues...)
	svc := appstandings.NewService(snapshotStore)
	plr := poller.New(srcs, svc, logger, recorder, cfg.RefreshInterval)
	httpSrv := buildHTTPServer(cfg, svc, plr, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         snapshotStore,
		service:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *appstandings.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    svc,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, svc *appstandings.Service, plr Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svc, "", logger)

	var admin *handlers.AdminHandler
	if cfg.Auth.AdminToken != "" {
		admin = handlers.NewAdminHandler(plr, cfg.Auth.AdminToken, logger)
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:        handler,
		Admin:          admin,
		Logger:         logger,
		Metrics:        recorder,
		APIKey:         cfg.Auth.APIKey,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ServiceName:    cfg.Metrics.ServiceName,
	})

	return newNetHTTPServer(cfg.Port, router)
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
// The poller refreshes every league once immediately, so data is available
// well before the first interval elapses.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := cfg.Metrics.Telemetry()
	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any(logging.FieldError, err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, name+" server failed", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Poller exposes the refresh poller.
func (s *Server) Poller() Poller {
	return s.poller
}

// Service exposes the standings service.
func (s *Server) Service() *appstandings.Service {
	return s.service
}
