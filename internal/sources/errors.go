package sources

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/standings-service/internal/scrape"
)

// FailureClass groups refresh failures the way operators care about them.
type FailureClass string

const (
	FailureNone       FailureClass = ""
	FailureTransport  FailureClass = "transport"
	FailureStructural FailureClass = "structural"
	FailureCanceled   FailureClass = "canceled"
	FailureOther      FailureClass = "other"
)

// ErrUnknownLeague is returned when no source is configured for a league.
var ErrUnknownLeague = errors.New("no source configured for league")

// Classify maps an error from FetchStandings onto a FailureClass.
func Classify(err error) FailureClass {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, context.Canceled):
		return FailureCanceled
	case errors.Is(err, scrape.ErrFetch), errors.Is(err, context.DeadlineExceeded):
		return FailureTransport
	case errors.Is(err, scrape.ErrInsufficientData):
		return FailureStructural
	default:
		return FailureOther
	}
}

// AsFetchError unwraps the upstream status failure, if any.
func AsFetchError(err error) (*scrape.FetchError, bool) {
	var fetchErr *scrape.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
