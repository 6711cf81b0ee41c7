package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/metrics"
	"github.com/preston-bernstein/standings-service/internal/sources"
)

const defaultInterval = 60 * time.Minute

// Publisher receives freshly assembled snapshots.
type Publisher interface {
	Publish(snap standings.Snapshot) error
}

// Poller refreshes every configured league on an interval and publishes
// successful snapshots. A failed refresh leaves the published snapshot alone.
type Poller struct {
	sources   map[standings.League]sources.Source
	leagues   []standings.League
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	inflight singleflight.Group

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   map[standings.League]Status
}

// Status describes the recent health of one league's refreshes.
type Status struct {
	League              standings.League
	ConsecutiveFailures int
	LastError           string
	LastFailure         sources.FailureClass
	LastAttempt         time.Time
	LastSuccess         time.Time
	TeamsCount          int
}

// IsReady reports whether the league has had a success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Outcome describes one successful refresh.
type Outcome struct {
	League      standings.League
	TeamsCount  int
	Skipped     int
	Selector    string
	LastUpdated string
}

// New constructs a Poller over srcs with sane defaults. Later sources for the
// same league replace earlier ones.
func New(srcs []sources.Source, publisher Publisher, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	p := &Poller{
		sources:   make(map[standings.League]sources.Source, len(srcs)),
		publisher: publisher,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
		status:    make(map[standings.League]Status, len(srcs)),
	}
	for _, src := range srcs {
		league := src.League()
		if _, seen := p.sources[league]; !seen {
			p.leagues = append(p.leagues, league)
		}
		p.sources[league] = src
		p.status[league] = Status{League: league}
	}
	return p
}

// Leagues lists the leagues this poller refreshes, in configuration order.
func (p *Poller) Leagues() []standings.League {
	return append([]standings.League(nil), p.leagues...)
}

// Start refreshes every league once, then again on every tick, until the
// context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started",
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
			slog.Int(logging.FieldCount, len(p.leagues)),
		)
		p.RefreshAll(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.RefreshAll(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshAll refreshes every league concurrently and returns the failures
// keyed by league. Leagues never affect each other: a panic in one refresh is
// recovered and reported as that league's failure.
func (p *Poller) RefreshAll(ctx context.Context) map[standings.League]error {
	var (
		mu     sync.Mutex
		wg     conc.WaitGroup
		failed = make(map[standings.League]error)
	)
	for _, league := range p.leagues {
		league := league
		wg.Go(func() {
			var pc panics.Catcher
			var err error
			pc.Try(func() { _, err = p.Refresh(ctx, league) })
			if r := pc.Recovered(); r != nil {
				err = errors.Newf("refresh panicked: %v", r.Value)
				p.recordFailure(league, err, p.now())
				p.metrics.RecordRefresh(league.String(), 0, string(sources.FailureOther))
				logging.Error(p.logger, "standings refresh panicked", err,
					slog.String(logging.FieldLeague, league.String()),
				)
			}
			if err != nil {
				mu.Lock()
				failed[league] = err
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	return failed
}

// Refresh runs the league's source and publishes the result. Concurrent
// calls for the same league share one in-flight refresh.
func (p *Poller) Refresh(ctx context.Context, league standings.League) (Outcome, error) {
	v, err, _ := p.inflight.Do(league.String(), func() (any, error) {
		return p.refreshOnce(ctx, league)
	})
	if err != nil {
		return Outcome{}, err
	}
	return v.(Outcome), nil
}

func (p *Poller) refreshOnce(ctx context.Context, league standings.League) (Outcome, error) {
	src, ok := p.sources[league]
	if !ok {
		return Outcome{}, errors.Wrapf(sources.ErrUnknownLeague, "%q", league)
	}

	start := p.now()
	p.recordAttempt(league, start)

	res, err := src.FetchStandings(ctx)
	if err == nil && p.publisher != nil {
		err = errors.Wrapf(p.publisher.Publish(res.Snapshot), "publish %s", league)
	}
	elapsed := p.now().Sub(start)

	if err != nil {
		class := sources.Classify(err)
		p.recordFailure(league, err, start)
		p.metrics.RecordRefresh(league.String(), elapsed, string(class))
		logging.Error(p.logger, "standings refresh failed, keeping previous snapshot", err,
			slog.String(logging.FieldLeague, league.String()),
			slog.String(logging.FieldReason, string(class)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return Outcome{}, err
	}

	out := Outcome{
		League:      league,
		TeamsCount:  res.Snapshot.Len(),
		Skipped:     len(res.Report.Skipped),
		Selector:    res.Selector,
		LastUpdated: res.Snapshot.LastUpdated,
	}
	p.recordSuccess(league, start, out.TeamsCount)
	p.metrics.RecordRefresh(league.String(), elapsed, metrics.OutcomeSuccess)
	p.metrics.RecordTeamsPublished(league.String(), out.TeamsCount)
	logging.Info(p.logger, "standings refreshed",
		slog.String(logging.FieldLeague, league.String()),
		slog.Int(logging.FieldCount, out.TeamsCount),
		slog.Int(logging.FieldSkipped, out.Skipped),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return out, nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(league standings.League, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	st := p.status[league]
	st.LastAttempt = at
	p.status[league] = st
}

func (p *Poller) recordSuccess(league standings.League, at time.Time, teams int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	st := p.status[league]
	st.ConsecutiveFailures = 0
	st.LastError = ""
	st.LastFailure = sources.FailureNone
	st.LastSuccess = at
	st.TeamsCount = teams
	p.status[league] = st
}

func (p *Poller) recordFailure(league standings.League, err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	st := p.status[league]
	st.ConsecutiveFailures++
	if err != nil {
		st.LastError = err.Error()
		st.LastFailure = sources.Classify(err)
	}
	st.LastAttempt = at
	p.status[league] = st
}

// Status returns the recent health of one league.
func (p *Poller) Status(league standings.League) (Status, bool) {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	st, ok := p.status[league]
	return st, ok
}

// Statuses returns every league's health in configuration order.
func (p *Poller) Statuses() []Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	out := make([]Status, 0, len(p.leagues))
	for _, l := range p.leagues {
		out = append(out, p.status[l])
	}
	return out
}
