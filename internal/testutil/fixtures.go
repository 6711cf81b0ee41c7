package testutil

import (
	domain "github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/teststubs"
)

// SampleLastUpdated is the timestamp stamped on sample snapshots.
const SampleLastUpdated = "2024-05-19T16:30:00.000000Z"

// SampleTeam returns a fully populated team row at the given position.
func SampleTeam(position int, name string) domain.Team {
	return domain.Team{
		Position:       position,
		Name:           name,
		Games:          34,
		Wins:           20,
		Losses:         8,
		Draws:          6,
		GoalsFor:       61,
		GoalsAgainst:   35,
		GoalDifference: 26,
		Points:         66,
	}
}

// SampleSnapshot builds a full-size table for league stamped with SampleLastUpdated.
func SampleSnapshot(league domain.League) domain.Snapshot {
	n := domain.MinTeams
	if info, ok := domain.Info(league); ok {
		n = info.ExpectedTeams
	}
	return teststubs.Table(league, n, SampleLastUpdated)
}
