// Package cli implements standings-scrape, a one-shot scraper for checking
// the league parsers against the live pages.
package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/standings-service/internal/config"
	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/scrape"
	"github.com/preston-bernstein/standings-service/internal/sources"
	"github.com/preston-bernstein/standings-service/internal/sources/leagues"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const leagueAll = "all"

type options struct {
	league    string
	format    string
	source    string
	url       string
	top       int
	timeout   time.Duration
	userAgent string
	verbose   bool
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "standings-scrape",
		Short: "Scrape Eredivisie and KKD standings once and print them",
		Long: `Fetches the league standings pages, runs the same parsers the service uses
and prints the resulting tables. Useful for checking selectors after the league
websites change their markup.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.league, "league", leagueAll, "League to scrape: eredivisie, kkd or all")
	cmd.Flags().StringVar(&opts.format, "format", string(FormatText), "Output format: text or json")
	cmd.Flags().StringVar(&opts.source, "source", config.SourceLive, "Page source: live or fixture")
	cmd.Flags().StringVar(&opts.url, "url", "", "Override the standings page URL (single league only)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Print only the first N teams (0 prints all)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", scrape.DefaultTimeout, "Fetch timeout per league")
	cmd.Flags().StringVar(&opts.userAgent, "user-agent", scrape.DefaultUserAgent, "User-Agent header sent to the league sites")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log parser decisions to stderr")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return errors.Newf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}
	targets, err := resolveLeagues(opts.league)
	if err != nil {
		return err
	}
	if opts.url != "" && len(targets) != 1 {
		return errors.New("--url needs a single --league")
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{Level: level, Output: stderr})

	srcs, err := buildSources(targets, opts, logger)
	if err != nil {
		return err
	}

	var (
		tables []Table
		failed []string
	)
	for _, src := range srcs {
		res, err := src.FetchStandings(ctx)
		if err != nil {
			logging.Error(logger, "scrape failed", err,
				slog.String(logging.FieldLeague, src.League().String()),
				slog.String(logging.FieldReason, string(sources.Classify(err))),
			)
			failed = append(failed, src.League().String())
			continue
		}
		tables = append(tables, newTable(res, opts.top))
	}

	if err := WriteOutput(stdout, tables, format); err != nil {
		return errors.Wrap(err, "writing output")
	}
	if len(failed) > 0 {
		return errors.Newf("scrape failed for: %s", strings.Join(failed, ", "))
	}
	return nil
}

func resolveLeagues(raw string) ([]standings.League, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, leagueAll) {
		return standings.AllLeagues(), nil
	}
	league, ok := standings.ParseLeague(raw)
	if !ok {
		return nil, errors.Newf("unknown league: %s (must be eredivisie, kkd or all)", raw)
	}
	return []standings.League{league}, nil
}

func buildSources(targets []standings.League, opts *options, logger *slog.Logger) ([]*sources.Scraper, error) {
	out := make([]*sources.Scraper, 0, len(targets))
	for _, league := range targets {
		var (
			src *sources.Scraper
			err error
		)
		switch opts.source {
		case config.SourceFixture:
			src, err = leagues.NewFixture(league, logger)
		case config.SourceLive, "":
			fetcher := scrape.NewFetcher(scrape.FetcherConfig{Timeout: opts.timeout, UserAgent: opts.userAgent})
			src, err = leagues.New(league, opts.url, fetcher, logger)
		default:
			return nil, errors.Newf("invalid source: %s (must be 'live' or 'fixture')", opts.source)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}
