package langex

import (
	"context"
	"time"
)

// StopReason names the condition that ended a crawl.
type StopReason string

// StopReason constants.
const (
	StopRangeExhausted StopReason = "range exhausted"
	StopFetchFailed    StopReason = "fetch failed"
	StopCanceled       StopReason = "canceled"
)

// Run describes one completed crawl.
type Run struct {
	ID        string     `json:"id"`
	BaseURL   string     `json:"baseUrl"`
	Begin     int        `json:"begin"`
	End       int        `json:"end"`
	Pages     int        `json:"pages"`
	Stop      StopReason `json:"stop"`
	StartedAt time.Time  `json:"startedAt"`
}

// PersonStore persists crawled persons.
type PersonStore interface {
	// SaveRun stores the run and its persons in order.
	// The run ID is assigned by the store.
	SaveRun(ctx context.Context, run *Run, persons []*Person) error
}

// PersonWriter emits the aggregated crawl result as a single JSON array.
type PersonWriter interface {
	WritePersons(persons []*Person) error
}
