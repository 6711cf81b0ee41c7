package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSendsUserAgentAndReturnsBody(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	body, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(body))
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestFetchNonSuccessStatusIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Equal(t, srv.URL, fetchErr.URL)
}

func TestFetchTransportFailureIsMarked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), url)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestFetchTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewFetcher(FetcherConfig{Timeout: 20 * time.Millisecond}).Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestFetchDocumentParsesHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(tableHTML("standings", 3, 0)))
	}))
	defer srv.Close()

	doc, err := NewFetcher(FetcherConfig{UserAgent: "test-agent"}).FetchDocument(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, 3, doc.Find("tbody tr").Length())
}
