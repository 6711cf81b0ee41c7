package server

import (
	"context"
	"strings"
	"testing"

	"github.com/preston-bernstein/standings-service/internal/config"
	domain "github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/metrics"
	"github.com/preston-bernstein/standings-service/internal/testutil"
)

func TestSourceFactoryBuildsOneSourcePerLeague(t *testing.T) {
	cfg := fixtureConfig()
	cfg.Source = config.SourceLive
	cfg.Fetch.KKDURL = "http://127.0.0.1:1/kkd"

	logger, buf := testutil.NewBufferLogger()
	srcs, err := newSourceFactory(logger, nil).build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(srcs) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(srcs))
	}
	if srcs[0].League() != domain.LeagueEredivisie || srcs[1].League() != domain.LeagueKKD {
		t.Fatalf("unexpected league order %s, %s", srcs[0].League(), srcs[1].League())
	}
	if got := buf.String(); !strings.Contains(got, "url=http://127.0.0.1:1/kkd") {
		t.Fatalf("expected kkd url override logged, got %s", got)
	}
}

func TestSourceFactoryFixtureSourcesRecordMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	srcs, err := newSourceFactory(nil, rec).build(fixtureConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, src := range srcs {
		res, err := src.FetchStandings(context.Background())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", src.League(), err)
		}
		info, _ := domain.Info(src.League())
		if res.Snapshot.Len() != info.ExpectedTeams {
			t.Fatalf("%s: expected %d teams, got %d", src.League(), info.ExpectedTeams, res.Snapshot.Len())
		}
		if rec.Snapshot(src.League().String()).Fetches != 1 {
			t.Fatalf("%s: expected one recorded fetch", src.League())
		}
	}
}
