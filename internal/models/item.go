// ABOUTME: Item model representing one normalized feed entry (RSS item or Atom entry)
// ABOUTME: Carries the source context it was produced from; owned by exactly one Bundle

package models

import "time"

// Item is a single normalized feed entry.
type Item struct {
	ID            string    // Trimmed entry link, or a random token when the entry has no link
	Title         string    // Entry title; "Untitled" when the document has none
	Link          string    // Trimmed entry link (may be empty)
	Date          time.Time // Published/updated time, or a fallback (see parse)
	Snippet       string    // Plain-text rendering of the entry content
	Image         string    // First image URL found for the entry; empty when none
	SourceID      string    // ID of the bundle this item belongs to
	SourceName    string    // Resolved feed title, not the raw caller-supplied name
	SourceStarred bool      // Copied from the source config
}
