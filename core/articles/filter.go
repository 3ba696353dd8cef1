// ABOUTME: Validity filter keeping administrative and threadbare articles out of the feed
// ABOUTME: Prefix matching against the title start, case-insensitive

package articles

import (
	"strings"

	"wikiscroll-api/core/domain"
)

// excludedTitlePrefixes marks administrative and meta pages that should
// never appear in the feed: listings, indices, templates, categories,
// portals, drafts, modules, file/help/special pages.
var excludedTitlePrefixes = []string{
	"list of",
	"lists of",
	"index of",
	"outline of",
	"glossary of",
	"template:",
	"category:",
	"portal:",
	"draft:",
	"module:",
	"file:",
	"help:",
	"special:",
	"wikipedia:",
	"wikivoyage:",
	"mediawiki:",
	"talk:",
	"user:",
	"timedtext:",
	"book:",
}

// isExcludedTitle reports whether a title starts with one of the excluded
// namespace prefixes, ignoring case.
func isExcludedTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, prefix := range excludedTitlePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// passesFilter applies the full validity filter to a candidate record:
// thumbnail present, plain-text body at least the minimum length, title
// outside the excluded namespaces.
func passesFilter(record *domain.ArticleRecord) bool {
	if !record.IsValid() {
		return false
	}
	return !isExcludedTitle(record.Title)
}
