// ABOUTME: SourceConfig model describing a single feed source supplied by the caller
// ABOUTME: Immutable per invocation; the caller owns the source list and its persistence

package models

// SourceConfig identifies one feed source to process. The caller supplies it
// and keeps ownership; processing never mutates it.
type SourceConfig struct {
	URL     string // Feed URL
	Name    string // Display name; may be a placeholder the normalizer replaces
	Starred bool   // Caller-side favorite flag, copied onto every produced item
}
