package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// ErrListen is what FailingHTTPServer returns from ListenAndServe.
var ErrListen = errors.New("listen failure")

// FakeHTTPServer satisfies the server package's httpServer interface.
// ListenErr and ShutdownErr are returned as-is. When Unblock is set, Shutdown
// waits for it to close or for ctx to end.
type FakeHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Unblock     chan struct{}

	listenCalls   atomic.Int32
	shutdownCalls atomic.Int32
}

// ClosedHTTPServer behaves like a server that was shut down cleanly.
func ClosedHTTPServer() *FakeHTTPServer {
	return &FakeHTTPServer{ListenErr: http.ErrServerClosed}
}

// FailingHTTPServer fails to listen.
func FailingHTTPServer() *FakeHTTPServer {
	return &FakeHTTPServer{ListenErr: ErrListen}
}

// BlockingHTTPServer holds Shutdown open until unblock is closed.
func BlockingHTTPServer(unblock chan struct{}) *FakeHTTPServer {
	return &FakeHTTPServer{Unblock: unblock}
}

func (f *FakeHTTPServer) ListenAndServe() error {
	f.listenCalls.Add(1)
	return f.ListenErr
}

func (f *FakeHTTPServer) Shutdown(ctx context.Context) error {
	f.shutdownCalls.Add(1)
	if f.Unblock == nil {
		return f.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.Unblock:
		return f.ShutdownErr
	}
}

func (f *FakeHTTPServer) Addr() string {
	if f.AddrVal == "" {
		return ":0"
	}
	return f.AddrVal
}

func (f *FakeHTTPServer) Handler() http.Handler {
	if f.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return f.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (f *FakeHTTPServer) ListenCalls() int { return int(f.listenCalls.Load()) }

// ShutdownCalls reports how many times Shutdown ran.
func (f *FakeHTTPServer) ShutdownCalls() int { return int(f.shutdownCalls.Load()) }
