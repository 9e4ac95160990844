// Package http provides an HTTP-based implementation of langex.Fetcher
// and the headers file format used to configure it.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/langex"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements langex.Fetcher at compile time.
var _ langex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves listing pages using plain HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a GET for url with the given headers and returns the body.
// Any status other than 200 is returned as an ENOTFOUND error.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers langex.Headers) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	applyHeaders(req, headers)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, langex.Errorf(langex.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// applyHeaders copies headers onto req.
// Host is routed to req.Host because net/http ignores it in the header map.
// Accept-Encoding is dropped so the transport negotiates and decodes gzip itself.
func applyHeaders(req *http.Request, headers langex.Headers) {
	for k, v := range headers {
		switch http.CanonicalHeaderKey(k) {
		case "Host":
			req.Host = v
		case "Accept-Encoding":
		default:
			req.Header.Set(k, v)
		}
	}
}
