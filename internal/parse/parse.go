// ABOUTME: RSS/Atom normalization using the gofeed library
// ABOUTME: Maps both feed schemas onto one item shape with title, date, and image heuristics

package parse

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/harper/feedline/internal/content"
	"github.com/harper/feedline/internal/models"
)

// PlaceholderName is the caller-supplied name that marks a source as unnamed.
// Sources carrying it (or no name at all) get the shortened extracted title.
const PlaceholderName = "New Feed"

// UntitledEntry is used when an entry has no title text.
const UntitledEntry = "Untitled"

// faviconEndpoint is the external favicon lookup service, keyed by hostname.
// Icons are always synthesized from it, never extracted from the document.
const faviconEndpoint = "https://www.google.com/s2/favicons?domain=%s&sz=64"

// missingDateOffsetDays is applied when an entry carries no date field at all.
// Distinct from the unparseable-date case, which falls back to the current time.
const missingDateOffsetDays = -30

// ErrMalformed is returned when the raw text is not a well-formed feed
// document. No partial recovery is attempted.
var ErrMalformed = errors.New("malformed feed document")

// SourceContext carries the caller identity attached to every produced item.
type SourceContext struct {
	ID      string
	Name    string
	URL     string
	Starred bool
}

// Result is the normalized output for one document.
type Result struct {
	Items []models.Item
	Meta  models.Metadata
}

// Parse parses raw as an RSS or Atom document and normalizes it. Entries are
// mapped in document order and never filtered; an entry with nothing usable
// still becomes an item with empty fields. Returns ErrMalformed (wrapped) when
// the text does not parse as a feed.
func Parse(raw string, src SourceContext) (*Result, error) {
	feed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	title := resolveTitle(strings.TrimSpace(feed.Title), src)

	meta := models.Metadata{
		Title:       title,
		Description: strings.TrimSpace(feed.Description),
		Link:        strings.TrimSpace(feed.Link),
		Icon:        faviconURL(src.URL),
	}

	items := make([]models.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, mapEntry(entry, feed.FeedType, title, src))
	}

	return &Result{Items: items, Meta: meta}, nil
}

// resolveTitle applies the two-branch title heuristic. Placeholder or absent
// caller names take the extracted title shortened at the first ':', '|' or '-'
// delimiter; named callers keep the extracted title verbatim. When the document
// has no title element at all, the hostname (minus a leading www.) is used.
func resolveTitle(extracted string, src SourceContext) string {
	name := strings.TrimSpace(src.Name)
	if name == "" || name == PlaceholderName {
		if extracted != "" {
			return shortenTitle(extracted)
		}
		return hostTitle(src.URL)
	}
	if extracted != "" {
		return extracted
	}
	return hostTitle(src.URL)
}

// shortenTitle keeps the first segment of a "Site Name: tagline" style title.
func shortenTitle(title string) string {
	if i := strings.IndexAny(title, ":|-"); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// hostTitle derives a display title from the URL's hostname.
func hostTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// faviconURL synthesizes the icon URL for the feed's hostname.
func faviconURL(rawURL string) string {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Hostname()
	}
	return fmt.Sprintf(faviconEndpoint, host)
}

// mapEntry converts one gofeed item into a normalized Item. feedType
// distinguishes the raw-content priority between the two schemas.
func mapEntry(entry *gofeed.Item, feedType, resolvedName string, src SourceContext) models.Item {
	link := strings.TrimSpace(entry.Link)

	raw := rawContent(entry, feedType)
	snippet := content.ExtractText(raw)

	image := entryImage(entry)
	if image == "" {
		image = content.FirstImage(raw)
	}

	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = UntitledEntry
	}

	id := link
	if id == "" {
		// Entries without a link get a random token: unique within this run
		// only, never stable across runs.
		id = uuid.NewString()[:8]
	}

	return models.Item{
		ID:            id,
		Title:         title,
		Link:          link,
		Date:          resolveDate(entry, time.Now()),
		Snippet:       snippet,
		Image:         image,
		SourceID:      src.ID,
		SourceName:    resolvedName,
		SourceStarred: src.Starred,
	}
}

// rawContent picks the entry body in schema priority order: content:encoded
// then description for RSS, summary then content for Atom. gofeed folds
// content:encoded/Atom content into Content and description/summary into
// Description, so the order flips per feed type.
func rawContent(entry *gofeed.Item, feedType string) string {
	if feedType == "atom" {
		return firstNonEmpty(entry.Description, entry.Content)
	}
	return firstNonEmpty(entry.Content, entry.Description)
}

// entryImage finds an image URL in the entry's structured fields: an enclosure
// with an image MIME type first, then a media:content url attribute.
func entryImage(entry *gofeed.Item) string {
	for _, enc := range entry.Enclosures {
		if enc == nil {
			continue
		}
		if strings.HasPrefix(enc.Type, "image") && strings.TrimSpace(enc.URL) != "" {
			return strings.TrimSpace(enc.URL)
		}
	}

	if media, ok := entry.Extensions["media"]; ok {
		for _, mc := range media["content"] {
			if u := strings.TrimSpace(mc.Attrs["url"]); u != "" {
				return u
			}
		}
	}

	return ""
}

// resolveDate returns the entry timestamp. An entry with no date field at all
// gets now minus 30 days; a date string that fails to parse gets now. The two
// fallbacks are deliberately different values.
func resolveDate(entry *gofeed.Item, now time.Time) time.Time {
	switch {
	case strings.TrimSpace(entry.Published) != "":
		if entry.PublishedParsed != nil {
			return *entry.PublishedParsed
		}
		return now
	case strings.TrimSpace(entry.Updated) != "":
		if entry.UpdatedParsed != nil {
			return *entry.UpdatedParsed
		}
		return now
	default:
		return now.AddDate(0, 0, missingDateOffsetDays)
	}
}

// firstNonEmpty returns the first candidate with non-whitespace content.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}
