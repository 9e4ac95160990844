// Package crawl drives extraction across a range of listing pages.
// Pages are processed strictly in order: one page is fetched and extracted
// before the next fetch begins.
package crawl

import (
	"context"

	"github.com/fwojciec/langex"
)

// Crawler walks listing pages and accumulates the persons found on them.
type Crawler struct {
	Fetcher   langex.Fetcher
	Extractor langex.PageExtractor

	// BaseURL is the first listing page. Defaults to langex.DefaultBaseURL.
	BaseURL string

	// Headers are sent unchanged with every fetch.
	Headers langex.Headers
}

// Result holds the outcome of a crawl.
type Result struct {
	// Persons in page order, then document order within a page.
	Persons []*langex.Person

	// Pages is the number of pages fetched, including pages whose
	// structure could not be extracted.
	Pages int

	// Last is the page index at which the crawl stopped.
	Last int

	Stop langex.StopReason
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressFetching ProgressType = iota
	ProgressExtracted
	ProgressRejected
	ProgressPageSkipped
	ProgressFetchFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Page      int
	URL       string
	Items     int
	Persons   int
	Rejection *langex.Rejection
	Pages     int
	Stop      langex.StopReason
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl processes pages from r.Begin upward until the range is exhausted
// or a fetch fails. A fetch failure ends the crawl successfully with
// whatever was accumulated. A page whose structure cannot be extracted
// contributes no persons and the crawl moves on to the next page.
//
// The only error returned for a started crawl is the context's error when
// it is canceled; the partial result is returned alongside it.
func (c *Crawler) Crawl(ctx context.Context, r langex.PageRange, progress ProgressFunc) (*Result, error) {
	if r.Begin < 1 {
		return nil, langex.Errorf(langex.EINVALID, "begin page must be at least 1, got %d", r.Begin)
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	base := c.BaseURL
	if base == "" {
		base = langex.DefaultBaseURL
	}

	result := &Result{Persons: []*langex.Person{}}
	finish := func(i int, stop langex.StopReason) *Result {
		result.Last = i
		result.Stop = stop
		progress(ProgressEvent{Type: ProgressFinished, Page: i, Pages: result.Pages, Persons: len(result.Persons), Stop: stop})
		return result
	}

	for i := r.Begin; ; i++ {
		if r.Bounded() && i == r.End {
			return finish(i, langex.StopRangeExhausted), nil
		}

		url, err := langex.PageURL(base, i)
		if err != nil {
			return nil, err
		}

		progress(ProgressEvent{Type: ProgressFetching, Page: i, URL: url})
		html, err := c.Fetcher.Fetch(ctx, url, c.Headers)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return finish(i, langex.StopCanceled), ctxErr
			}
			progress(ProgressEvent{Type: ProgressFetchFailed, Page: i, URL: url, Error: err})
			return finish(i, langex.StopFetchFailed), nil
		}
		result.Pages++

		page, err := c.Extractor.ExtractPage(html)
		if err != nil {
			progress(ProgressEvent{Type: ProgressPageSkipped, Page: i, URL: url, Error: err})
			continue
		}

		progress(ProgressEvent{Type: ProgressExtracted, Page: i, URL: url, Items: page.Items, Persons: len(page.Persons)})
		for j := range page.Rejections {
			progress(ProgressEvent{Type: ProgressRejected, Page: i, URL: url, Rejection: &page.Rejections[j]})
		}
		result.Persons = append(result.Persons, page.Persons...)
	}
}
