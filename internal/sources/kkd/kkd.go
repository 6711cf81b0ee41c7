// Package kkd scrapes the Keuken Kampioen Divisie table.
package kkd

import (
	"log/slog"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/scrape"
	"github.com/preston-bernstein/standings-service/internal/sources"
)

const (
	// MaxPosition is the number of clubs in the division.
	MaxPosition = 20

	nameCellSelector = `td.font-bold.hidden.lg\:table-cell a`
)

// Layout lists the selectors tried against the page, most specific first.
var Layout = scrape.TableLayout{
	Selectors: []string{
		"table.table-medium tbody tr",
		"table.table tbody tr",
		"table.standings tbody tr",
		".standings-table tbody tr",
		"table tbody tr",
		".table tbody tr",
	},
	ExpectedRows: MaxPosition,
	PositionCell: 1,
}

// New builds the KKD source. An empty url uses the league default.
func New(url string, fetcher sources.DocumentFetcher, logger *slog.Logger) *sources.Scraper {
	return sources.NewScraper(sources.Config{
		League:  standings.LeagueKKD,
		URL:     url,
		Layout:  Layout,
		Parse:   NewParser(logger).ParseRow,
		Fetcher: fetcher,
		Logger:  logger,
	})
}

// Parser reads KKD rows. The logger only reports points deductions.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseRow reads one row laid out as
// marker | position | crest | club | played | W/D/L | points | GF/GA | goal difference.
func (p *Parser) ParseRow(index int, row *goquery.Selection) scrape.RowResult {
	cells := scrape.Cells(row)
	if n := cells.Length(); n < scrape.MinCells {
		return scrape.Skip("expected at least %d cells, got %d", scrape.MinCells, n)
	}

	position := scrape.ParseInt(scrape.CellText(cells, 1))
	if position < 1 || position > MaxPosition {
		position = index + 1
	}

	name := teamName(row, cells)
	if name == "" {
		return scrape.Skip("could not extract team name")
	}

	// Upstream column order is wins/draws/losses.
	results := scrape.SplitInts(scrape.CellText(cells, 5), "/")
	goals := scrape.SplitInts(scrape.CellText(cells, 7), "/")
	points := scrape.ParseInt(scrape.CellText(cells, 6))

	if points < 0 {
		logging.Info(p.logger, "club has negative points",
			slog.String(logging.FieldLeague, standings.LeagueKKD.String()),
			slog.String("team", name),
			slog.Int("points", points),
		)
	}

	return scrape.Parsed(standings.Team{
		Position:       position,
		Name:           name,
		Games:          scrape.ParseInt(scrape.CellText(cells, 4)),
		Wins:           scrape.Part(results, 0),
		Draws:          scrape.Part(results, 1),
		Losses:         scrape.Part(results, 2),
		GoalsFor:       scrape.Part(goals, 0),
		GoalsAgainst:   scrape.Part(goals, 1),
		GoalDifference: scrape.ParseInt(scrape.CellText(cells, 8)),
		Points:         points,
	})
}

// teamName tries the desktop name link, then the crest alt text, then cell 3.
func teamName(row, cells *goquery.Selection) string {
	candidates := []func() string{
		func() string { return row.Find(nameCellSelector).First().Text() },
		func() string {
			alt, _ := cells.Eq(2).Find("img[alt]").First().Attr("alt")
			return alt
		},
		func() string { return scrape.CellText(cells, 3) },
	}
	for _, candidate := range candidates {
		if name := scrape.NormalizeName(candidate()); utf8.RuneCountInString(name) >= 2 {
			return name
		}
	}
	return ""
}
