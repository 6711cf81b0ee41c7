package store

import (
	"sync"
	"testing"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
)

func table(league standings.League, n int, stamp string) standings.Snapshot {
	teams := make([]standings.Team, n)
	for i := range teams {
		teams[i] = standings.Team{Position: i + 1, Name: "Club", Points: 40 - i}
	}
	return standings.NewSnapshot(league, teams, stamp)
}

func TestSnapshotStoreSetAndGet(t *testing.T) {
	s := NewSnapshotStore()

	if !s.SetSnapshot(table(standings.LeagueEredivisie, 18, "2024-01-01T00:00:00.000000Z")) {
		t.Fatalf("expected eredivisie to be tracked")
	}

	snap, ok := s.GetSnapshot(standings.LeagueEredivisie)
	if !ok {
		t.Fatalf("expected snapshot to be present")
	}
	if snap.Len() != 18 {
		t.Fatalf("expected 18 teams, got %d", snap.Len())
	}
	if snap.LastUpdated != "2024-01-01T00:00:00.000000Z" {
		t.Fatalf("unexpected last_updated %s", snap.LastUpdated)
	}
}

func TestSnapshotStoreAbsentUntilPublished(t *testing.T) {
	s := NewSnapshotStore()
	if _, ok := s.GetSnapshot(standings.LeagueKKD); ok {
		t.Fatalf("expected kkd to be absent before first publish")
	}
	s.SetSnapshot(table(standings.LeagueEredivisie, 18, "a"))
	if _, ok := s.GetSnapshot(standings.LeagueKKD); ok {
		t.Fatalf("publishing one league must not affect another")
	}
}

func TestSnapshotStoreRejectsUntrackedLeague(t *testing.T) {
	s := NewSnapshotStore(standings.LeagueKKD)

	if s.SetSnapshot(table(standings.LeagueEredivisie, 18, "a")) {
		t.Fatalf("expected untracked league to be rejected")
	}
	if _, ok := s.GetSnapshot(standings.LeagueEredivisie); ok {
		t.Fatalf("expected untracked league to stay absent")
	}
	if got := s.Leagues(); len(got) != 1 || got[0] != standings.LeagueKKD {
		t.Fatalf("unexpected leagues %v", got)
	}
}

func TestSnapshotStoreSetReplacesSnapshot(t *testing.T) {
	s := NewSnapshotStore()
	s.SetSnapshot(table(standings.LeagueKKD, 20, "old"))

	s.SetSnapshot(table(standings.LeagueKKD, 12, "new"))

	snap, _ := s.GetSnapshot(standings.LeagueKKD)
	if snap.LastUpdated != "new" || snap.Len() != 12 {
		t.Fatalf("expected wholesale replacement, got %s with %d teams", snap.LastUpdated, snap.Len())
	}
}

func TestSnapshotStoreGetReturnsCopy(t *testing.T) {
	s := NewSnapshotStore()
	original := table(standings.LeagueKKD, 20, "t")
	s.SetSnapshot(original)

	original.Standings[0].Name = "mutated before read"
	got, _ := s.GetSnapshot(standings.LeagueKKD)
	got.Standings[1].Name = "mutated after read"

	again, _ := s.GetSnapshot(standings.LeagueKKD)
	if again.Standings[0].Name != "Club" || again.Standings[1].Name != "Club" {
		t.Fatalf("expected store to remain unchanged, got %+v", again.Standings[:2])
	}
}

func TestSnapshotStoreConcurrentReadersAndWriter(t *testing.T) {
	s := NewSnapshotStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if snap, ok := s.GetSnapshot(standings.LeagueEredivisie); ok && snap.Len() != 18 {
					t.Errorf("observed partial snapshot with %d teams", snap.Len())
					return
				}
			}
		}()
	}
	for j := 0; j < 200; j++ {
		s.SetSnapshot(table(standings.LeagueEredivisie, 18, "t"))
	}
	wg.Wait()
}
