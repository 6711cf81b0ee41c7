package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	domain "github.com/preston-bernstein/standings-service/internal/domain/standings"
)

func TestFixturesHelper(t *testing.T) {
	team := SampleTeam(3, "Feyenoord")
	if team.Position != 3 || team.Name != "Feyenoord" || team.Points == 0 {
		t.Fatalf("unexpected team fixture %+v", team)
	}

	ere := SampleSnapshot(domain.LeagueEredivisie)
	if ere.Len() != 18 || ere.LastUpdated != SampleLastUpdated {
		t.Fatalf("unexpected eredivisie snapshot %d %s", ere.Len(), ere.LastUpdated)
	}
	if kkd := SampleSnapshot(domain.LeagueKKD); kkd.Len() != 20 {
		t.Fatalf("expected 20 kkd teams, got %d", kkd.Len())
	}
}

func TestServiceHelper(t *testing.T) {
	svc := NewServiceWithSnapshots(SampleSnapshot(domain.LeagueKKD))
	if _, ok := svc.Snapshot(domain.LeagueKKD); !ok {
		t.Fatalf("expected published kkd snapshot")
	}
	if _, ok := svc.Snapshot(domain.LeagueEredivisie); ok {
		t.Fatalf("expected no eredivisie snapshot")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestFakeHTTPServerReturnsConfiguredErrors(t *testing.T) {
	f := &FakeHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	if err := f.ListenAndServe(); err == nil || err.Error() != "boom" {
		t.Fatalf("expected listen error, got %v", err)
	}
	if err := f.Shutdown(context.Background()); err == nil || err.Error() != "down" {
		t.Fatalf("expected shutdown error, got %v", err)
	}
	if f.ListenCalls() != 1 || f.ShutdownCalls() != 1 {
		t.Fatalf("expected one call each, got listen=%d shutdown=%d", f.ListenCalls(), f.ShutdownCalls())
	}
	if f.Addr() != ":0" || f.Handler() == nil {
		t.Fatalf("expected default addr and handler")
	}
}

func TestFakeHTTPServerPresets(t *testing.T) {
	if err := ClosedHTTPServer().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
	if err := FailingHTTPServer().ListenAndServe(); !errors.Is(err, ErrListen) {
		t.Fatalf("expected ErrListen, got %v", err)
	}

	unblock := make(chan struct{})
	b := BlockingHTTPServer(unblock)
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := BlockingHTTPServer(make(chan struct{})).Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
