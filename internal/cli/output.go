package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/sources"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Table is one scraped league as printed by the CLI.
type Table struct {
	League      standings.League `json:"league"`
	Selector    string           `json:"selector"`
	RowsFound   int              `json:"rows_found"`
	Skipped     int              `json:"skipped"`
	LastUpdated string           `json:"last_updated"`
	Standings   []standings.Team `json:"standings"`
}

func newTable(res sources.Result, top int) Table {
	snap := res.Snapshot.Top(top)
	return Table{
		League:      snap.League,
		Selector:    res.Selector,
		RowsFound:   res.Report.RowsFound,
		Skipped:     len(res.Report.Skipped),
		LastUpdated: snap.LastUpdated,
		Standings:   snap.Teams(),
	}
}

// WriteOutput writes the tables in the specified format
func WriteOutput(w io.Writer, tables []Table, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, tables)
	case FormatText:
		return writeText(w, tables)
	default:
		return errors.Newf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, tables []Table) error {
	if tables == nil {
		tables = []Table{}
	}
	body, err := sonic.ConfigStd.MarshalIndent(tables, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", body)
	return err
}

func writeText(w io.Writer, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d teams, updated %s)\n", t.League.DisplayName(), len(t.Standings), t.LastUpdated)
		if t.Skipped > 0 {
			fmt.Fprintf(w, "skipped %d of %d rows (selector %q)\n", t.Skipped, t.RowsFound, t.Selector)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "#\tClub\tP\tW\tD\tL\tGF\tGA\tGD\tPts\t")
		for _, team := range t.Standings {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t\n",
				team.Position, team.Name, team.Games, team.Wins, team.Draws, team.Losses,
				team.GoalsFor, team.GoalsAgainst, team.GoalDifference, team.Points)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
