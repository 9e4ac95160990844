package mock

import "github.com/fwojciec/langex"

var _ langex.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of langex.PageExtractor.
type PageExtractor struct {
	ExtractPageFn func(html []byte) (*langex.PageResult, error)
}

func (e *PageExtractor) ExtractPage(html []byte) (*langex.PageResult, error) {
	return e.ExtractPageFn(html)
}
