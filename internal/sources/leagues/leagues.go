// Package leagues maps a league id onto its scraper.
package leagues

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/sources"
	"github.com/preston-bernstein/standings-service/internal/sources/eredivisie"
	"github.com/preston-bernstein/standings-service/internal/sources/fixture"
	"github.com/preston-bernstein/standings-service/internal/sources/kkd"
)

// New returns the scraper for league reading url through fetcher.
// An empty url selects the league's public standings page.
func New(league standings.League, url string, fetcher sources.DocumentFetcher, logger *slog.Logger) (*sources.Scraper, error) {
	switch league {
	case standings.LeagueEredivisie:
		return eredivisie.New(url, fetcher, logger), nil
	case standings.LeagueKKD:
		return kkd.New(url, fetcher, logger), nil
	default:
		return nil, errors.Wrapf(sources.ErrUnknownLeague, "%q", league)
	}
}

// NewFixture returns the scraper for league reading the bundled sample page.
func NewFixture(league standings.League, logger *slog.Logger) (*sources.Scraper, error) {
	fetcher, err := fixture.NewFetcher(league)
	if err != nil {
		return nil, err
	}
	return New(league, "", fetcher, logger)
}
