package langex

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the first page of the online listing.
const DefaultBaseURL = "https://en.language.exchange/online/"

// PageRange selects the listing pages to crawl.
// End is exclusive. Zero means unbounded: pages are crawled until a fetch fails.
type PageRange struct {
	Begin int
	End   int
}

// Bounded reports whether the range has an explicit stop page.
func (r PageRange) Bounded() bool {
	return r.End > 0
}

// PageURL derives the URL of listing page i from the base listing URL.
// Page 1 is the base itself; page i > 1 is the base joined with "i/".
func PageURL(base string, i int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL: %v", err)
	}
	if i < 1 {
		return "", Errorf(EINVALID, "invalid page index %d", i)
	}
	if i == 1 {
		return u.String(), nil
	}
	ref := &url.URL{Path: strconv.Itoa(i)}
	return u.ResolveReference(ref).String() + "/", nil
}

// Headers holds the request headers sent with every page fetch.
type Headers map[string]string

// Fetcher retrieves raw page bytes.
type Fetcher interface {
	// Fetch issues a GET for url with the given headers and returns the body.
	// Any non-success status or transport failure is returned as an error.
	Fetch(ctx context.Context, url string, headers Headers) ([]byte, error)
}

// Rejection reasons reported when a listing item does not match the record layout.
const (
	RejectTopLevelParts   = "wrong part count at top level"
	RejectTextBlockParts  = "wrong part count in text block"
	RejectNameLinks       = "wrong link count in name block"
	RejectLocationLinks   = "wrong link count in location block"
	RejectLanguageColumns = "wrong column count in language block"
	RejectMissingField    = "missing required field"
)

// Rejection describes a listing item that was skipped.
type Rejection struct {
	// Item is the zero-based position of the item within the listing container.
	Item   int
	Reason string
	// Got is the observed count that failed the check.
	Got int
}

// PageResult holds the outcome of extracting one listing page.
type PageResult struct {
	// Items is the number of candidate listing items in the container.
	Items      int
	Persons    []*Person
	Rejections []Rejection
}

// PageExtractor derives person records from a fetched listing page.
type PageExtractor interface {
	// ExtractPage parses html and extracts every valid listing item in document order.
	// Returns EINVALID when the page does not contain exactly one listing container.
	ExtractPage(html []byte) (*PageResult, error)
}
