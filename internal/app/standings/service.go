package standings

import (
	"github.com/cockroachdb/errors"

	domain "github.com/preston-bernstein/standings-service/internal/domain/standings"
)

var (
	// ErrUnknownLeague is returned for a league the service does not track.
	ErrUnknownLeague = errors.New("unknown league")
	// ErrNotAvailable is returned while a league has no published snapshot.
	ErrNotAvailable = errors.New("standings data not available")
)

// Store defines the contract for publishing and reading league snapshots.
type Store interface {
	GetSnapshot(league domain.League) (domain.Snapshot, bool)
	SetSnapshot(snap domain.Snapshot) bool
	Leagues() []domain.League
}

// LeagueStatus summarises one league for the status endpoint.
type LeagueStatus struct {
	League      domain.League
	LastUpdated string
	TeamsCount  int
	Available   bool
}

// Service coordinates standings reads and publishes over a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Leagues lists the leagues this service serves.
func (s *Service) Leagues() []domain.League {
	return s.store.Leagues()
}

// Snapshot returns the league's current snapshot if one was published.
func (s *Service) Snapshot(league domain.League) (domain.Snapshot, bool) {
	return s.store.GetSnapshot(league)
}

// Standings returns the league table limited to the first top teams.
// A non-positive top returns the whole table.
func (s *Service) Standings(league domain.League, top int) (domain.Response, error) {
	if !s.tracks(league) {
		return domain.Response{}, errors.Wrapf(ErrUnknownLeague, "%q", league)
	}
	snap, ok := s.store.GetSnapshot(league)
	if !ok {
		return domain.Response{}, errors.Wrapf(ErrNotAvailable, "%s", league)
	}
	return domain.NewResponse(snap.Top(top)), nil
}

// Publish swaps in a new snapshot for snap.League.
func (s *Service) Publish(snap domain.Snapshot) error {
	if !s.store.SetSnapshot(snap) {
		return errors.Wrapf(ErrUnknownLeague, "%q", snap.League)
	}
	return nil
}

// Status reports last update and team count per league.
func (s *Service) Status() []LeagueStatus {
	leagues := s.store.Leagues()
	out := make([]LeagueStatus, 0, len(leagues))
	for _, l := range leagues {
		st := LeagueStatus{League: l}
		if snap, ok := s.store.GetSnapshot(l); ok {
			st.Available = true
			st.LastUpdated = snap.LastUpdated
			st.TeamsCount = snap.Len()
		}
		out = append(out, st)
	}
	return out
}

// Ready reports whether every league has a published snapshot.
func (s *Service) Ready() bool {
	for _, st := range s.Status() {
		if !st.Available {
			return false
		}
	}
	return true
}

func (s *Service) tracks(league domain.League) bool {
	for _, l := range s.store.Leagues() {
		if l == league {
			return true
		}
	}
	return false
}
