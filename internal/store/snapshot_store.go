package store

import (
	"sync/atomic"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
)

// SnapshotStore keeps the latest published standings per league in memory.
// Each league slot is a single pointer swapped wholesale, so readers never
// block and never see a half-written table.
type SnapshotStore struct {
	slots map[standings.League]*atomic.Pointer[standings.Snapshot]
}

// NewSnapshotStore builds an empty store for the given leagues, or every
// supported league when none are passed.
func NewSnapshotStore(leagues ...standings.League) *SnapshotStore {
	if len(leagues) == 0 {
		leagues = standings.AllLeagues()
	}
	slots := make(map[standings.League]*atomic.Pointer[standings.Snapshot], len(leagues))
	for _, l := range leagues {
		slots[l] = &atomic.Pointer[standings.Snapshot]{}
	}
	return &SnapshotStore{slots: slots}
}

// GetSnapshot returns a copy of the league's snapshot. The bool is false
// until a snapshot has been published for the league.
func (s *SnapshotStore) GetSnapshot(league standings.League) (standings.Snapshot, bool) {
	slot, ok := s.slots[league]
	if !ok {
		return standings.Snapshot{}, false
	}
	snap := slot.Load()
	if snap == nil {
		return standings.Snapshot{}, false
	}
	return standings.NewSnapshot(snap.League, snap.Standings, snap.LastUpdated), true
}

// SetSnapshot replaces the league's snapshot. It reports false when the store
// does not track snap.League.
func (s *SnapshotStore) SetSnapshot(snap standings.Snapshot) bool {
	slot, ok := s.slots[snap.League]
	if !ok {
		return false
	}
	stored := standings.NewSnapshot(snap.League, snap.Standings, snap.LastUpdated)
	slot.Store(&stored)
	return true
}

// Leagues lists the tracked leagues in display order.
func (s *SnapshotStore) Leagues() []standings.League {
	out := make([]standings.League, 0, len(s.slots))
	for _, l := range standings.AllLeagues() {
		if _, ok := s.slots[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
