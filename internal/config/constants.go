package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envSource          = "SOURCE"
	envLeagues         = "LEAGUES"
	envAPIKey          = "API_KEY"
	envAdminToken      = "ADMIN_TOKEN"
	envFetchTimeout    = "FETCH_TIMEOUT"
	envFetchUserAgent  = "FETCH_USER_AGENT"
	envEredivisieURL   = "EREDIVISIE_URL"
	envKKDURL          = "KKD_URL"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	// SourceLive scrapes the league websites.
	SourceLive = "live"
	// SourceFixture parses the bundled sample pages.
	SourceFixture = "fixture"

	defaultPort = "8000"
	// Standings change a few times a week; hourly keeps load on the league sites low.
	defaultRefreshInterval = time.Hour
	defaultSource          = SourceLive
	defaultFetchTimeout    = 30 * time.Second
	defaultMetricsPort     = "9090"
	defaultServiceName     = "standings-service"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)
