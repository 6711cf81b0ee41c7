package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	maxBodyBytes = 5 << 20
)

// ErrFetch marks every failure to retrieve a page (status or transport).
var ErrFetch = errors.New("standings fetch failed")

// FetchError is returned when the upstream answers with a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetcherConfig controls the HTTP client used to download standings pages.
type FetcherConfig struct {
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Fetcher downloads a page with one attempt, a total timeout and a browser User-Agent.
type Fetcher struct {
	client    httpDoer
	userAgent string
}

// NewFetcher constructs a Fetcher, filling defaults for unset fields.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Fetcher{client: client, userAgent: ua}
}

// Fetch performs a single GET and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "creating request for %s", url), ErrFetch)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetching %s", url), ErrFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Mark(&FetchError{URL: url, StatusCode: resp.StatusCode}, ErrFetch)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading body of %s", url), ErrFetch)
	}
	return body, nil
}

// FetchDocument fetches url and parses the body as HTML.
func (f *Fetcher) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseDocument(body)
}

// ParseDocument parses raw HTML into a goquery document.
func ParseDocument(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML")
	}
	return doc, nil
}
