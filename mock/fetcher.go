package mock

import (
	"context"

	"github.com/fwojciec/langex"
)

var _ langex.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of langex.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers langex.Headers) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers langex.Headers) ([]byte, error) {
	return f.FetchFn(ctx, url, headers)
}
