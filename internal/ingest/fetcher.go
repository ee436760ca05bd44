package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher downloads remote resources with a bounded timeout and a browser-like
// User-Agent. The ABB download servers vary their behavior by client identity,
// so the header is not optional.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get fetches url and returns the body together with the declared
// Content-Type. Non-2xx statuses and transport failures yield a fetch error.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fetchErr(fmt.Sprintf("create request for %s", url), err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fetchErr(fmt.Sprintf("fetch %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fetchErr(fmt.Sprintf("fetch %s: status %d", url, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fetchErr(fmt.Sprintf("read body of %s", url), err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
