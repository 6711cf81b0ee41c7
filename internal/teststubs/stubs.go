package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/sources"
)

// StubSource is a test double for sources.Source.
type StubSource struct {
	LeagueID standings.League
	Notify   chan struct{}
	Calls    atomic.Int32
	// Block, when set, holds FetchStandings until it is closed or ctx ends.
	Block chan struct{}
	// Panic makes FetchStandings panic with the given value.
	Panic any

	mu     sync.Mutex
	result sources.Result
	err    error
}

// NewStubSource returns a source that yields snap for league.
func NewStubSource(league standings.League, snap standings.Snapshot) *StubSource {
	s := &StubSource{LeagueID: league}
	s.SetResult(sources.Result{Snapshot: snap}, nil)
	return s
}

// SetResult changes what the next fetch returns.
func (s *StubSource) SetResult(res sources.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = res
	s.err = err
}

// SetErr makes the next fetch fail with err; nil restores the last result.
func (s *StubSource) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *StubSource) League() standings.League {
	return s.LeagueID
}

// FetchStandings returns the configured result while tracking calls.
func (s *StubSource) FetchStandings(ctx context.Context) (sources.Result, error) {
	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if s.Panic != nil {
		panic(s.Panic)
	}
	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return sources.Result{}, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return sources.Result{}, s.err
	}
	return s.result, nil
}

// Table builds a snapshot of n teams ordered by position.
func Table(league standings.League, n int, lastUpdated string) standings.Snapshot {
	teams := make([]standings.Team, n)
	for i := range teams {
		teams[i] = standings.Team{
			Position:       i + 1,
			Name:           "Club " + string(rune('A'+i%26)),
			Games:          30,
			Wins:           20 - i%20,
			Losses:         i % 20,
			Draws:          5,
			GoalsFor:       50,
			GoalsAgainst:   30 + i,
			GoalDifference: 20 - i,
			Points:         65 - 3*i,
		}
	}
	return standings.NewSnapshot(league, teams, lastUpdated)
}
