// Package eredivisie scrapes the Eredivisie table from eredivisie.nl.
package eredivisie

import (
	"log/slog"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/scrape"
	"github.com/preston-bernstein/standings-service/internal/sources"
)

// Layout lists the selectors tried against the page, most specific first.
var Layout = scrape.TableLayout{
	Selectors: []string{
		"table.standings tbody tr",
		".standings-table tbody tr",
		"table tbody tr",
		".table tbody tr",
	},
	ExpectedRows: 18,
	PositionCell: 0,
}

// New builds the Eredivisie source. An empty url uses the league default.
func New(url string, fetcher sources.DocumentFetcher, logger *slog.Logger) *sources.Scraper {
	return sources.NewScraper(sources.Config{
		League:  standings.LeagueEredivisie,
		URL:     url,
		Layout:  Layout,
		Parse:   ParseRow,
		Fetcher: fetcher,
		Logger:  logger,
	})
}

// ParseRow reads one row laid out as
// position | club | played | W|L|D | GF-GA | goal difference | points.
func ParseRow(index int, row *goquery.Selection) scrape.RowResult {
	cells := scrape.Cells(row)
	if n := cells.Length(); n < scrape.MinCells {
		return scrape.Skip("expected at least %d cells, got %d", scrape.MinCells, n)
	}

	position := index + 1
	if raw := scrape.CellText(cells, 0); scrape.IsPlainInt(raw) {
		position = scrape.ParseInt(raw)
	}

	name := scrape.NormalizeName(cells.Eq(1).Text())
	if utf8.RuneCountInString(name) < 2 {
		return scrape.Skip("team name %q too short", name)
	}

	// Upstream column order is wins|losses|draws.
	results := scrape.SplitInts(scrape.CellText(cells, 3), "|")
	goals := scrape.SplitInts(scrape.CellText(cells, 4), "-")

	return scrape.Parsed(standings.Team{
		Position:       position,
		Name:           name,
		Games:          scrape.ParseInt(scrape.CellText(cells, 2)),
		Wins:           scrape.Part(results, 0),
		Losses:         scrape.Part(results, 1),
		Draws:          scrape.Part(results, 2),
		GoalsFor:       scrape.Part(goals, 0),
		GoalsAgainst:   scrape.Part(goals, 1),
		GoalDifference: scrape.ParseInt(scrape.CellText(cells, 5)),
		Points:         scrape.ParseInt(scrape.CellText(cells, 6)),
	})
}
