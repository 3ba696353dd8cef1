// ABOUTME: ArticleRecord domain model represents a validated article served in a feed batch
// ABOUTME: Provides validation to ensure a record never reaches a client with missing fields

package domain

import "unicode/utf8"

// Minimum plain-text excerpt length for an article to be considered
// substantial enough to show in the feed.
const MinBodyLength = 80

// Source identifies which upstream project an article came from.
type Source string

const (
	// SourceEncyclopedia is the encyclopedia upstream (Wikipedia).
	SourceEncyclopedia Source = "wikipedia"

	// SourceTravelGuide is the travel-guide upstream (Wikivoyage).
	SourceTravelGuide Source = "wikivoyage"
)

// ArticleRecord is the normalized unit returned to feed clients.
type ArticleRecord struct {
	// ID is the source-prefixed identifier, e.g. "w12345" or "v678".
	ID string `json:"id"`

	// Source names the upstream project the article belongs to.
	Source Source `json:"source"`

	// Title is the canonical upstream article title.
	Title string `json:"title"`

	// Body is a plain text excerpt with all HTML markup stripped.
	Body string `json:"body"`

	// Image is the article thumbnail URL.
	Image string `json:"image"`

	// URL is the canonical page URL for the article.
	URL string `json:"url"`
}

// IsValid reports whether the record satisfies the invariants required
// of anything handed to a client: a non-empty body of at least
// MinBodyLength plain-text characters and a resolvable image.
func (a *ArticleRecord) IsValid() bool {
	if a.Title == "" {
		return false
	}

	// Character count, not bytes, so multibyte scripts are held to the
	// same minimum as Latin text.
	if utf8.RuneCountInString(a.Body) < MinBodyLength {
		return false
	}

	if a.Image == "" {
		return false
	}

	return true
}
