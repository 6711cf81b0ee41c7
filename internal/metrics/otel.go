package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "standings-service"

const otlpExportInterval = 15 * time.Second

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(otlpExportInterval)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	fetches          metric.Int64Counter
	fetchErrors      metric.Int64Counter
	fetchLatencyMs   metric.Float64Histogram
	rowsSkipped      metric.Int64Counter
	refreshes        metric.Int64Counter
	refreshLatencyMs metric.Float64Histogram
	teamsPublished   metric.Int64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// instrumentBuilder keeps the first creation error so the instrument list reads flat.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	if b.err == nil {
		b.err = err
	}
	return c
}

func (b *instrumentBuilder) latency(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("ms"))
	if b.err == nil {
		b.err = err
	}
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(DefaultServiceName)}
	o := &otelInstruments{
		ctx:              context.Background(),
		meter:            b.meter,
		requests:         b.counter("http_requests_total", "HTTP requests served, by route and status"),
		requestLatencyMs: b.latency("http_request_duration_ms", "HTTP request latency"),
		fetches:          b.counter("standings_fetch_total", "League page fetch and parse attempts"),
		fetchErrors:      b.counter("standings_fetch_errors_total", "League page fetches that produced no snapshot"),
		fetchLatencyMs:   b.latency("standings_fetch_duration_ms", "League page fetch and parse latency"),
		rowsSkipped:      b.counter("standings_rows_skipped_total", "Table rows dropped by the row parsers or validation"),
		refreshes:        b.counter("standings_refresh_total", "Refresh cycles by league and outcome"),
		refreshLatencyMs: b.latency("standings_refresh_duration_ms", "Refresh cycle latency"),
	}
	if b.err != nil {
		return nil, b.err
	}
	teams, err := b.meter.Int64Histogram("standings_teams_published",
		metric.WithDescription("Teams in each published snapshot"))
	if err != nil {
		return nil, err
	}
	o.teamsPublished = teams
	return o, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordFetch(league string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrLeague, league)}
	o.recordCounter(o.fetches, 1, attrs...)
	o.recordHistogram(o.fetchLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.fetchErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRowsSkipped(league string, count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.rowsSkipped, int64(count), attribute.String(AttrLeague, league))
}

func (o *otelInstruments) recordRefresh(league string, duration time.Duration, outcome string) {
	if o == nil {
		return
	}
	o.recordCounter(o.refreshes, 1,
		attribute.String(AttrLeague, league),
		attribute.String(AttrOutcome, outcome),
	)
	o.recordHistogram(o.refreshLatencyMs, float64(duration.Milliseconds()), attribute.String(AttrLeague, league))
}

func (o *otelInstruments) recordTeamsPublished(league string, count int) {
	if o == nil {
		return
	}
	o.teamsPublished.Record(o.ctx, int64(count), metric.WithAttributes(attribute.String(AttrLeague, league)))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
