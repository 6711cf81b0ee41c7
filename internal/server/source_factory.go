package server

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/standings-service/internal/config"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/metrics"
	"github.com/preston-bernstein/standings-service/internal/scrape"
	"github.com/preston-bernstein/standings-service/internal/sources"
	"github.com/preston-bernstein/standings-service/internal/sources/fixture"
	"github.com/preston-bernstein/standings-service/internal/sources/leagues"
)

// sourceFactory assembles one instrumented source per configured league.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) ([]sources.Source, error) {
	live := scrape.NewFetcher(scrape.FetcherConfig{
		Timeout:   time.Duration(cfg.Fetch.Timeout),
		UserAgent: cfg.Fetch.UserAgent,
	})

	out := make([]sources.Source, 0, len(cfg.Leagues))
	for _, league := range cfg.Leagues {
		var fetcher sources.DocumentFetcher = live
		if cfg.Source == config.SourceFixture {
			fx, err := fixture.NewFetcher(league)
			if err != nil {
				return nil, err
			}
			fetcher = fx
		}
		src, err := leagues.New(league, cfg.Fetch.URL(league), fetcher, f.logger)
		if err != nil {
			return nil, err
		}
		logging.Info(f.logger, "standings source configured",
			slog.String(logging.FieldLeague, league.String()),
			slog.String(logging.FieldSource, cfg.Source),
			slog.String(logging.FieldURL, src.URL()),
		)
		out = append(out, sources.NewInstrumented(src, f.metrics, f.logger))
	}
	return out, nil
}
