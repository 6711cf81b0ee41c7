package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetch("eredivisie", 10*time.Millisecond, nil)
	rec.RecordFetch("eredivisie", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("eredivisie")
	if snap.Fetches != 2 || snap.FetchErrors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastFetchLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastFetchLatency)
	}
	if other := rec.Snapshot("kkd"); other.Fetches != 0 {
		t.Fatalf("expected leagues to be tracked separately, got %+v", other)
	}
}

func TestRecorderTracksRefreshOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRefresh("kkd", time.Second, OutcomeSuccess)
	rec.RecordTeamsPublished("kkd", 20)
	rec.RecordRefresh("kkd", time.Second, "transport")
	rec.RecordRowsSkipped("kkd", 2)
	rec.RecordRowsSkipped("kkd", 0)

	snap := rec.Snapshot("kkd")
	if snap.Refreshes != 2 || snap.RefreshFailures != 1 {
		t.Fatalf("unexpected refresh counters %+v", snap)
	}
	if snap.LastOutcome != "transport" {
		t.Fatalf("expected last outcome transport, got %q", snap.LastOutcome)
	}
	if snap.TeamsPublished != 20 || snap.RowsSkipped != 2 {
		t.Fatalf("unexpected counts %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("kkd", time.Millisecond, nil)
	rec.RecordRefresh("kkd", time.Millisecond, OutcomeSuccess)
	rec.RecordRowsSkipped("kkd", 1)
	rec.RecordTeamsPublished("kkd", 20)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if snap := rec.Snapshot("kkd"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
