package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/langex"
	"github.com/fwojciec/langex/crawl"
)

// ExportCmd crawls a page range and emits the collected persons.
type ExportCmd struct {
	Crawler *crawl.Crawler
	Writer  langex.PersonWriter
	Store   langex.PersonStore // optional
	Stderr  io.Writer
}

// Run crawls r, writes the JSON result and, if configured, stores the run.
// A canceled crawl still writes what was collected before returning the error.
func (c *ExportCmd) Run(ctx context.Context, r langex.PageRange) error {
	started := time.Now().UTC()

	result, crawlErr := c.Crawler.Crawl(ctx, r, c.progress)
	if result == nil {
		return crawlErr
	}

	if err := c.Writer.WritePersons(result.Persons); err != nil {
		return fmt.Errorf("failed to write persons: %w", err)
	}

	if c.Store != nil {
		run := &langex.Run{
			BaseURL:   c.Crawler.BaseURL,
			Begin:     r.Begin,
			End:       r.End,
			Pages:     result.Pages,
			Stop:      result.Stop,
			StartedAt: started,
		}
		// The store runs on a fresh context so a canceled crawl is still recorded.
		if err := c.Store.SaveRun(context.WithoutCancel(ctx), run, result.Persons); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Fprintf(c.Stderr, "Saved run %s\n", run.ID)
	}

	return crawlErr
}

// progress renders crawl events as diagnostic lines.
func (c *ExportCmd) progress(e crawl.ProgressEvent) {
	switch e.Type {
	case crawl.ProgressFetching:
		fmt.Fprintf(c.Stderr, "url: %s\n", e.URL)
	case crawl.ProgressRejected:
		fmt.Fprintf(c.Stderr, "item %d: %s (got %d)\n", e.Rejection.Item, e.Rejection.Reason, e.Rejection.Got)
	case crawl.ProgressExtracted:
		fmt.Fprintf(c.Stderr, "item list: %d, persons: %d\n", e.Items, e.Persons)
	case crawl.ProgressPageSkipped:
		fmt.Fprintf(c.Stderr, "skip page %d: %s\n", e.Page, langex.ErrorMessage(e.Error))
	case crawl.ProgressFetchFailed:
		fmt.Fprintf(c.Stderr, "stop at page %d: %v\n", e.Page, e.Error)
	case crawl.ProgressFinished:
		fmt.Fprintf(c.Stderr, "Done %d pages\n", e.Pages)
	}
}
