package server

import (
	"context"

	"github.com/preston-bernstein/standings-service/internal/http/handlers"
	"github.com/preston-bernstein/standings-service/internal/poller"
)

// Poller defines the poller behavior the server needs.
type Poller interface {
	handlers.Refresher
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Statuses() []poller.Status
}
