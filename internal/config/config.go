package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
)

var validate = validator.New()

// Config holds runtime configuration for the server.
type Config struct {
	Port            string             `validate:"required,numeric"`
	RefreshInterval time.Duration      `validate:"gt=0"`
	Source          string             `validate:"oneof=live fixture"`
	Leagues         []standings.League `validate:"min=1"`
	Auth            AuthConfig
	Fetch           FetchConfig
	CORS            CORSConfig
	Metrics         MetricsConfig
	Log             LogConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=text json"`
}

// CORSConfig lists the origins allowed to read the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Source:          envOrDefault(envSource, defaultSource),
		Leagues:         loadLeagues(),
		Auth:            loadAuth(),
		Fetch:           loadFetch(),
		CORS:            CORSConfig{AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"})},
		Metrics:         loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// loadLeagues keeps the known leagues from LEAGUES, in order and without
// duplicates. Unknown names are dropped.
func loadLeagues() []standings.League {
	raw := listEnvOrDefault(envLeagues, nil)
	if len(raw) == 0 {
		return standings.AllLeagues()
	}
	seen := make(map[standings.League]bool, len(raw))
	out := make([]standings.League, 0, len(raw))
	for _, name := range raw {
		l, ok := standings.ParseLeague(name)
		if !ok || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
