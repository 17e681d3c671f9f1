// Package scrape owns page fetching and the per-site card extractor contract.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
)

// Fetcher retrieves a page body. Implementations must be time-bounded; a
// failed fetch simply means the source contributes nothing this run.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Source turns one site's listing page into raw cards. Extract never fails on
// malformed markup; it returns fewer (or zero) cards instead.
type Source interface {
	Name() domain.Source
	URL() string
	// RequiresFresh reports whether this source's cards carry a usable
	// recency signal. Sources without one skip the freshness predicate.
	RequiresFresh() bool
	Extract(doc *goquery.Document) []domain.RawCard
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// HTTPFetcher is the plain-HTTP collaborator with per-host rate limiting.
type HTTPFetcher struct {
	hc        *http.Client
	limiter   *HostLimiter
	userAgent string
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPFetcher{
		hc:        &http.Client{Timeout: timeout},
		limiter:   NewHostLimiter(1, 2),
		userAgent: defaultUserAgent,
	}
}

// Fetch returns the page body, or an error on transport failure or a
// non-success status.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.WaitURL(ctx, url); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	res, err := f.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: status %d", url, res.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, 6<<20))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(b), nil
}

// ParseDoc wraps a fetched body for selector work.
func ParseDoc(page string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(page))
}
