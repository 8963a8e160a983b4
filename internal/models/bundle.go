// ABOUTME: Bundle model collecting the outcome of processing one feed source
// ABOUTME: Tracks the waiting->success/error status transition and owns the produced items

package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a Bundle.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Metadata holds feed-level metadata extracted during normalization.
type Metadata struct {
	Title       string // Resolved feed title (heuristics applied, see parse)
	Description string // Channel description or Atom subtitle
	Link        string // Feed's alternate/site link
	Icon        string // Favicon-service URL derived from the feed hostname
}

// Bundle is the result of processing one feed source. A bundle is created in
// StatusWaiting and transitions exactly once, to StatusSuccess or StatusError.
// On error the bundle stays empty: no items, zero-value metadata.
type Bundle struct {
	ID           string
	Name         string
	URL          string
	Starred      bool
	Status       Status
	LastFetched  time.Time
	StrategyUsed string // Name of the fetch strategy that produced the body; empty on error
	Items        []Item
	Error        string // Human-readable failure message; empty on success
	Metadata     Metadata
}

// NewBundle creates a waiting Bundle for the given source with a fresh ID.
func NewBundle(src SourceConfig) *Bundle {
	return &Bundle{
		ID:      uuid.New().String(),
		Name:    src.Name,
		URL:     src.URL,
		Starred: src.Starred,
		Status:  StatusWaiting,
		Items:   []Item{},
	}
}

// Succeed marks the bundle successful and attaches the normalized results.
// The bundle name is replaced by the resolved feed title.
func (b *Bundle) Succeed(strategy string, meta Metadata, items []Item) {
	b.Status = StatusSuccess
	b.StrategyUsed = strategy
	b.Metadata = meta
	b.Items = items
	b.Name = meta.Title
	b.LastFetched = time.Now()
}

// Fail marks the bundle failed with a human-readable message. Items and
// metadata are left at their initial empty values.
func (b *Bundle) Fail(msg string) {
	b.Status = StatusError
	b.Error = msg
	b.LastFetched = time.Now()
}
