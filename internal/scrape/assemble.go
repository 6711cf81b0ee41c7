package scrape

import (
	"log/slog"
	"sort"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/timeutil"
)

// ErrInsufficientData reports a table that produced fewer than standings.MinTeams teams.
var ErrInsufficientData = errors.New("insufficient standings data")

var validate = validator.New()

// AssembleOptions configures one Assemble call.
type AssembleOptions struct {
	League        standings.League
	ExpectedTeams int
	Now           func() time.Time
	Logger        *slog.Logger
}

// SkippedRow records why a row was left out of a snapshot.
type SkippedRow struct {
	Index  int
	Reason string
}

// Report summarises what Assemble did with the located rows.
type Report struct {
	RowsFound int
	Parsed    int
	Skipped   []SkippedRow
}

// Assemble parses up to ExpectedTeams rows, drops skipped or structurally
// invalid ones and builds a snapshot sorted by position. It returns
// ErrInsufficientData when fewer than standings.MinTeams teams survive.
func Assemble(rows []*goquery.Selection, parse RowParser, opts AssembleOptions) (standings.Snapshot, Report, error) {
	report := Report{RowsFound: len(rows)}
	if opts.ExpectedTeams > 0 && len(rows) > opts.ExpectedTeams {
		rows = rows[:opts.ExpectedTeams]
	}

	teams := make([]standings.Team, 0, len(rows))
	for i, row := range rows {
		res := SafeParse(parse, i, row)
		if res.OK {
			if err := validate.Struct(res.Team); err != nil {
				res = Skip("invalid team %q: %v", res.Team.Name, err)
			}
		}
		if !res.OK {
			report.Skipped = append(report.Skipped, SkippedRow{Index: i, Reason: res.Reason})
			logging.Warn(opts.Logger, "skipping standings row",
				slog.String(logging.FieldLeague, opts.League.String()),
				slog.Int(logging.FieldRow, i),
				slog.String(logging.FieldReason, res.Reason),
			)
			continue
		}
		teams = append(teams, res.Team)
	}
	report.Parsed = len(teams)

	if len(teams) < standings.MinTeams {
		return standings.Snapshot{}, report, errors.Wrapf(ErrInsufficientData,
			"%s: parsed %d teams from %d rows, need at least %d",
			opts.League, len(teams), report.RowsFound, standings.MinTeams)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Position < teams[j].Position
	})

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	return standings.NewSnapshot(opts.League, teams, timeutil.FormatTimestamp(now())), report, nil
}
