// ABOUTME: Renders the crawler-facing preview document for a resolved article
// ABOUTME: Pure function of its inputs; every interpolated value is HTML-escaped

package preview

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"wikiscroll-api/core/domain"
)

// ProductName is appended to preview titles so unfurled links carry the
// product brand.
const ProductName = "WikiScroll"

// Render builds the minimal HTML document served to link-preview crawlers.
// It carries the social-preview meta fields plus a dual redirect (declarative
// refresh and script replace) so a human landing on the same URL reaches the
// real page. Identical inputs produce byte-identical output.
//
// Upstream titles and descriptions are user-generated-ish content; every
// interpolated value goes through html.EscapeString so they can never
// inject markup.
func Render(p *domain.NormalizedPreview, requestURL string) string {
	title := html.EscapeString(p.Title) + " — " + ProductName

	description := p.Description
	if description == "" {
		description = fmt.Sprintf("Read about %s on %s.", p.Title, p.SourceLabel)
	}
	description = html.EscapeString(description)

	image := html.EscapeString(p.Image)
	canonical := html.EscapeString(p.CanonicalURL)
	target := html.EscapeString(requestURL)

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", description)
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", title)
	fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", description)
	fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n", image)
	b.WriteString("<meta property=\"og:image:width\" content=\"1200\">\n")
	b.WriteString("<meta property=\"og:image:height\" content=\"630\">\n")
	fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\">\n", canonical)
	b.WriteString("<meta property=\"og:type\" content=\"article\">\n")
	b.WriteString("<meta name=\"twitter:card\" content=\"summary_large_image\">\n")
	fmt.Fprintf(&b, "<meta name=\"twitter:title\" content=\"%s\">\n", title)
	fmt.Fprintf(&b, "<meta name=\"twitter:description\" content=\"%s\">\n", description)
	fmt.Fprintf(&b, "<meta name=\"twitter:image\" content=\"%s\">\n", image)
	fmt.Fprintf(&b, "<meta http-equiv=\"refresh\" content=\"0;url=%s\">\n", target)
	b.WriteString("</head>\n<body>\n")
	// json.Marshal escapes <, > and & to < etc., so the URL cannot
	// close the script element.
	jsTarget, _ := json.Marshal(requestURL)
	fmt.Fprintf(&b, "<script>window.location.replace(%s);</script>\n", jsTarget)
	b.WriteString("</body>\n</html>\n")

	return b.String()
}
