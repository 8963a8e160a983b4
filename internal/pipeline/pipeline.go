// ABOUTME: Per-source orchestration: retrieve raw feed text, normalize it, assemble a Bundle
// ABOUTME: Converts both failure kinds into an error-status bundle; nothing escapes to the caller

package pipeline

import (
	"context"
	"fmt"

	"github.com/harper/feedline/internal/fetch"
	"github.com/harper/feedline/internal/models"
	"github.com/harper/feedline/internal/parse"
)

// Processor runs the two-stage retrieve/normalize pipeline for feed sources.
// Invocations share no mutable state; a single Processor may be used from
// multiple goroutines.
type Processor struct {
	client *fetch.Client
}

// New returns a Processor using the default fetch strategies.
func New() *Processor {
	return &Processor{client: fetch.NewClient()}
}

// NewWithClient returns a Processor using a caller-supplied fetch client.
func NewWithClient(client *fetch.Client) *Processor {
	return &Processor{client: client}
}

// Process fetches and normalizes one feed source, returning exactly one
// Bundle. The bundle status is always success or error, never waiting, and an
// error bundle carries no items or metadata. Errors never escape; they are
// recorded as human-readable messages on the bundle.
func (p *Processor) Process(ctx context.Context, src models.SourceConfig) *models.Bundle {
	bundle := models.NewBundle(src)

	fetched, err := p.client.Fetch(ctx, src.URL)
	if err != nil {
		bundle.Fail(fmt.Sprintf("could not reach feed: %v", err))
		return bundle
	}

	parsed, err := parse.Parse(fetched.Body, parse.SourceContext{
		ID:      bundle.ID,
		Name:    src.Name,
		URL:     src.URL,
		Starred: src.Starred,
	})
	if err != nil {
		bundle.Fail(fmt.Sprintf("could not parse feed: %v", err))
		return bundle
	}

	bundle.Succeed(fetched.Strategy, parsed.Meta, parsed.Items)
	return bundle
}
