package config

import "github.com/preston-bernstein/standings-service/internal/metrics"

// MetricsConfig holds the telemetry settings read from METRICS_* and OTEL_* variables.
type MetricsConfig struct {
	Enabled      bool
	Port         string `validate:"omitempty,numeric"`
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

// Telemetry converts the settings into the exporter configuration.
func (m MetricsConfig) Telemetry() metrics.TelemetryConfig {
	return metrics.TelemetryConfig{
		Enabled:      m.Enabled,
		Port:         m.Port,
		ServiceName:  m.ServiceName,
		OtlpEndpoint: m.OtlpEndpoint,
		OtlpInsecure: m.OtlpInsecure,
	}
}
