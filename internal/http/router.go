package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/preston-bernstein/standings-service/internal/http/handlers"
	"github.com/preston-bernstein/standings-service/internal/http/middleware"
	"github.com/preston-bernstein/standings-service/internal/metrics"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Handler        *handlers.Handler
	Admin          *handlers.AdminHandler
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	APIKey         string
	AllowedOrigins []string
	ServiceName    string
}

// NewRouter registers the standings routes on a chi router.
// Health and readiness stay outside the API key guard so probes work.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	h := cfg.Handler
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = metrics.DefaultServiceName
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions, nethttp.MethodHead},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(otelhttp.NewMiddleware(serviceName))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(cfg.APIKey, cfg.Logger))
		r.Get("/", h.Root)
		r.Get("/standings", h.Eredivisie)
		r.Get("/kkd-standings", h.KKD)
		r.Get("/standings/{league}", h.LeagueStandings)
	})

	if cfg.Admin != nil {
		r.Post("/admin/refresh", cfg.Admin.Refresh)
	}
	return r
}
