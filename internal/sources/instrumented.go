package sources

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
)

// Recorder is the slice of metrics.Recorder a source reports into.
type Recorder interface {
	RecordFetch(league string, duration time.Duration, err error)
	RecordRowsSkipped(league string, count int)
}

// instrumentedSource times every fetch and reports outcome and skipped rows.
type instrumentedSource struct {
	inner   Source
	metrics Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewInstrumented wraps inner with metrics and logging. A nil recorder is allowed.
func NewInstrumented(inner Source, metrics Recorder, logger *slog.Logger) Source {
	return &instrumentedSource{
		inner:   inner,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *instrumentedSource) League() standings.League {
	return s.inner.League()
}

func (s *instrumentedSource) FetchStandings(ctx context.Context) (Result, error) {
	league := s.inner.League()
	start := s.now()
	res, err := s.inner.FetchStandings(ctx)
	elapsed := s.now().Sub(start)

	if s.metrics != nil {
		s.metrics.RecordFetch(league.String(), elapsed, err)
		if skipped := len(res.Report.Skipped); skipped > 0 {
			s.metrics.RecordRowsSkipped(league.String(), skipped)
		}
	}

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logWithLeague(ctx, logger, slog.LevelError, league, "standings fetch failed",
			slog.String("class", string(Classify(err))),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		return res, err
	}
	logWithLeague(ctx, logger, slog.LevelInfo, league, "standings fetched",
		slog.Int(logging.FieldCount, res.Snapshot.Len()),
		slog.Int(logging.FieldSkipped, len(res.Report.Skipped)),
		slog.String(logging.FieldSelector, res.Selector),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return res, nil
}
