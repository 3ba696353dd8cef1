// ABOUTME: NormalizedPreview carries the metadata needed to render a link preview
// ABOUTME: Constructed per-request from a resolved reference, never persisted

package domain

// MaxPreviewDescription is the length the preview description is
// truncated to.
const MaxPreviewDescription = 200

// NormalizedPreview holds preview metadata for a single resolved article.
type NormalizedPreview struct {
	// Title is the canonical upstream title.
	Title string

	// Description is a single-line excerpt, at most MaxPreviewDescription
	// characters.
	Description string

	// Image is the thumbnail URL, or a placeholder path when the article
	// has no thumbnail.
	Image string

	// CanonicalURL is the upstream page URL.
	CanonicalURL string

	// SourceLabel is the human-readable name of the upstream project.
	SourceLabel string
}

// Label returns the display name for a source.
func (s Source) Label() string {
	if s == SourceTravelGuide {
		return "Wikivoyage"
	}
	return "Wikipedia"
}
