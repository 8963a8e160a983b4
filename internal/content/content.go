// ABOUTME: Content processing utilities for feed entries
// ABOUTME: Parses HTML fragments to extract visible text and the first image URL

package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText parses fragment as HTML and returns its visible text content,
// trimmed. Markup is stripped; text order is preserved. Input that contains no
// markup comes back unchanged apart from trimming.
func ExtractText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// html.Parse is tolerant enough that this is effectively unreachable;
		// fall back to the raw fragment rather than lose the entry.
		return strings.TrimSpace(fragment)
	}

	return strings.TrimSpace(doc.Text())
}

// FirstImage parses fragment as HTML and returns the src of the first <img>
// element, or "" when the fragment contains none.
func FirstImage(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	src, ok := doc.Find("img").First().Attr("src")
	if !ok {
		return ""
	}
	return strings.TrimSpace(src)
}
