package scrape

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
)

// RowResult is the outcome of parsing one table row: a team, or a skip reason.
type RowResult struct {
	Team   standings.Team
	OK     bool
	Reason string
}

// Parsed wraps a successfully extracted team.
func Parsed(team standings.Team) RowResult {
	return RowResult{Team: team, OK: true}
}

// Skip marks a row as excluded from the table.
func Skip(format string, args ...any) RowResult {
	return RowResult{Reason: fmt.Sprintf(format, args...)}
}

// RowParser extracts a team from the row at the given zero-based index.
type RowParser func(index int, row *goquery.Selection) RowResult

// SafeParse runs parse and turns a panic on malformed markup into a skip.
func SafeParse(parse RowParser, index int, row *goquery.Selection) (res RowResult) {
	defer func() {
		if r := recover(); r != nil {
			res = Skip("row parser panicked: %v", r)
		}
	}()
	return parse(index, row)
}
