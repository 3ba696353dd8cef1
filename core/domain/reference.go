// ABOUTME: ArticleReference parses the source-prefixed identifiers used in share links
// ABOUTME: A reference with an unknown prefix or empty page id is invalid, never partial

package domain

// Reference prefixes selecting the upstream content source.
const (
	PrefixEncyclopedia = "w"
	PrefixTravelGuide  = "v"
)

// ArticleReference is a parsed source-prefixed article identifier.
type ArticleReference struct {
	// Source is the upstream project the reference points into.
	Source Source

	// PageID is the upstream numeric page identifier, kept as a string.
	PageID string
}

// ParseReference parses a raw reference string such as "w12345" or "v678".
// It returns false for an empty string, an unrecognized prefix, an empty
// page id, or a non-numeric page id.
func ParseReference(raw string) (ArticleReference, bool) {
	if len(raw) < 2 {
		return ArticleReference{}, false
	}

	var source Source
	switch raw[:1] {
	case PrefixEncyclopedia:
		source = SourceEncyclopedia
	case PrefixTravelGuide:
		source = SourceTravelGuide
	default:
		return ArticleReference{}, false
	}

	pageID := raw[1:]
	for _, r := range pageID {
		if r < '0' || r > '9' {
			return ArticleReference{}, false
		}
	}

	return ArticleReference{Source: source, PageID: pageID}, true
}

// String returns the prefixed form of the reference.
func (r ArticleReference) String() string {
	switch r.Source {
	case SourceTravelGuide:
		return PrefixTravelGuide + r.PageID
	default:
		return PrefixEncyclopedia + r.PageID
	}
}
