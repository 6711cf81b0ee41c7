// Package fixture serves bundled sample league pages so the real parsers can
// run without network access.
package fixture

import (
	"context"
	"embed"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/scrape"
)

//go:embed testdata/*.html
var pages embed.FS

// Page returns the raw sample page for a league.
func Page(league standings.League) ([]byte, error) {
	body, err := pages.ReadFile("testdata/" + league.String() + ".html")
	if err != nil {
		return nil, errors.Wrapf(err, "no fixture page for league %q", league)
	}
	return body, nil
}

// Fetcher hands out one league's sample page regardless of the URL asked for.
type Fetcher struct {
	page []byte
}

// NewFetcher loads the sample page for league.
func NewFetcher(league standings.League) (*Fetcher, error) {
	page, err := Page(league)
	if err != nil {
		return nil, err
	}
	return &Fetcher{page: page}, nil
}

func (f *Fetcher) FetchDocument(ctx context.Context, _ string) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scrape.ParseDocument(f.page)
}
