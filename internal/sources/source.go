package sources

import (
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/scrape"
)

// Source produces a fresh standings snapshot for one league.
type Source interface {
	League() standings.League
	FetchStandings(ctx context.Context) (Result, error)
}

// Result is a snapshot plus what the scrape saw on the way.
type Result struct {
	Snapshot standings.Snapshot
	Report   scrape.Report
	Selector string
}

// DocumentFetcher retrieves and parses a standings page.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, url string) (*goquery.Document, error)
}

// Config describes one league scraper.
type Config struct {
	League  standings.League
	URL     string
	Layout  scrape.TableLayout
	Parse   scrape.RowParser
	Fetcher DocumentFetcher
	Logger  *slog.Logger
	Now     func() time.Time
}

// Scraper is the Source shared by every league: fetch, locate, parse, assemble.
// Leagues differ only in their layout and row parser.
type Scraper struct {
	cfg Config
}

// NewScraper fills in league defaults for the URL and expected row count.
func NewScraper(cfg Config) *Scraper {
	info, ok := standings.Info(cfg.League)
	if ok {
		if cfg.URL == "" {
			cfg.URL = info.DefaultURL
		}
		if cfg.Layout.ExpectedRows <= 0 {
			cfg.Layout.ExpectedRows = info.ExpectedTeams
		}
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher = scrape.NewFetcher(scrape.FetcherConfig{})
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Scraper{cfg: cfg}
}

func (s *Scraper) League() standings.League {
	return s.cfg.League
}

// URL is the page this scraper reads.
func (s *Scraper) URL() string {
	return s.cfg.URL
}

// FetchStandings downloads the league page and builds a snapshot from it.
func (s *Scraper) FetchStandings(ctx context.Context) (Result, error) {
	logging.Debug(s.cfg.Logger, "fetching standings page",
		slog.String(logging.FieldLeague, s.cfg.League.String()),
		slog.String(logging.FieldURL, s.cfg.URL),
	)
	doc, err := s.cfg.Fetcher.FetchDocument(ctx, s.cfg.URL)
	if err != nil {
		return Result{}, err
	}
	return s.Parse(doc)
}

// Parse runs the table locator, row parser and assembler over doc.
func (s *Scraper) Parse(doc *goquery.Document) (Result, error) {
	located := scrape.LocateRows(doc, s.cfg.Layout)
	logging.Info(s.cfg.Logger, "located standings rows",
		slog.String(logging.FieldLeague, s.cfg.League.String()),
		slog.String(logging.FieldSelector, located.Selector),
		slog.Int(logging.FieldCount, len(located.Rows)),
	)

	snap, report, err := scrape.Assemble(located.Rows, s.cfg.Parse, scrape.AssembleOptions{
		League:        s.cfg.League,
		ExpectedTeams: s.cfg.Layout.ExpectedRows,
		Now:           s.cfg.Now,
		Logger:        s.cfg.Logger,
	})
	return Result{Snapshot: snap, Report: report, Selector: located.Selector}, err
}
