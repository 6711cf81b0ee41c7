package metrics

import (
	"sync"
	"time"
)

// OutcomeSuccess labels a refresh that published a snapshot.
const OutcomeSuccess = "success"

type leagueStats struct {
	fetches          int
	fetchErrors      int
	lastFetchLatency time.Duration
	rowsSkipped      int
	refreshes        int
	refreshFailures  int
	lastOutcome      string
	teamsPublished   int
}

// Recorder captures in-memory per-league counters and mirrors them to OTel
// instruments when telemetry is enabled. All methods are nil-safe.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*leagueStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*leagueStats),
		otel:  otel,
	}
}

// RecordFetch counts a source fetch and stores its latency.
func (r *Recorder) RecordFetch(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.update(league, func(s *leagueStats) {
		s.fetches++
		s.lastFetchLatency = duration
		if err != nil {
			s.fetchErrors++
		}
	})
	if r.otel != nil {
		r.otel.recordFetch(league, duration, err)
	}
}

// RecordRowsSkipped adds rows the parser or validator rejected.
func (r *Recorder) RecordRowsSkipped(league string, count int) {
	if r == nil || count <= 0 {
		return
	}
	r.update(league, func(s *leagueStats) {
		s.rowsSkipped += count
	})
	if r.otel != nil {
		r.otel.recordRowsSkipped(league, count)
	}
}

// RecordRefresh tracks one refresh cycle for a league. outcome is
// OutcomeSuccess or the failure class.
func (r *Recorder) RecordRefresh(league string, duration time.Duration, outcome string) {
	if r == nil {
		return
	}
	r.update(league, func(s *leagueStats) {
		s.refreshes++
		s.lastOutcome = outcome
		if outcome != OutcomeSuccess {
			s.refreshFailures++
		}
	})
	if r.otel != nil {
		r.otel.recordRefresh(league, duration, outcome)
	}
}

// RecordTeamsPublished stores the team count of the snapshot just published.
func (r *Recorder) RecordTeamsPublished(league string, count int) {
	if r == nil {
		return
	}
	r.update(league, func(s *leagueStats) {
		s.teamsPublished = count
	})
	if r.otel != nil {
		r.otel.recordTeamsPublished(league, count)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the counters for one league.
type Snapshot struct {
	Fetches          int
	FetchErrors      int
	LastFetchLatency time.Duration
	RowsSkipped      int
	Refreshes        int
	RefreshFailures  int
	LastOutcome      string
	TeamsPublished   int
}

func (r *Recorder) Snapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stats[league]
	if !ok || s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          s.fetches,
		FetchErrors:      s.fetchErrors,
		LastFetchLatency: s.lastFetchLatency,
		RowsSkipped:      s.rowsSkipped,
		Refreshes:        s.refreshes,
		RefreshFailures:  s.refreshFailures,
		LastOutcome:      s.lastOutcome,
		TeamsPublished:   s.teamsPublished,
	}
}

func (r *Recorder) update(league string, fn func(*leagueStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[league]
	if !ok {
		stats = &leagueStats{}
		r.stats[league] = stats
	}
	fn(stats)
}
