// ABOUTME: HTML utilities for converting markup fragments to plain text
// ABOUTME: Used to normalize upstream article extracts before length validation

package htmltext

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Strip converts an HTML fragment to plain text: tags removed, entities
// decoded, whitespace collapsed to single spaces. Script and style
// contents are dropped entirely. Input that is already plain text passes
// through with only whitespace normalization.
func Strip(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseWhitespace(fragment)
	}

	doc.Find("script, style").Remove()

	return collapseWhitespace(doc.Text())
}

// SingleLine collapses embedded newlines and surrounding whitespace so the
// result is safe to embed in a single meta attribute.
func SingleLine(text string) string {
	return collapseWhitespace(text)
}

// Truncate cuts text to at most max characters, trimming any trailing
// space left at the cut point.
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}

	runes := []rune(text)
	return strings.TrimRight(string(runes[:max]), " ")
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
