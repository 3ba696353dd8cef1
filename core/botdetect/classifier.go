// ABOUTME: User-agent classifier separating link-preview crawlers from human browsers
// ABOUTME: Pure substring matching over a fixed crawler list, failing open toward human

package botdetect

import "strings"

// crawlerSignatures lists known crawler identity substrings: social-media
// link-unfurlers, search-engine crawlers, and messaging-app previewers.
// Matching is by substring so versioned UA strings like
// "facebookexternalhit/1.1" are caught. All entries are lowercase.
var crawlerSignatures = []string{
	"facebookexternalhit",
	"facebookcatalog",
	"twitterbot",
	"linkedinbot",
	"slackbot",
	"telegrambot",
	"whatsapp",
	"discordbot",
	"googlebot",
	"bingbot",
	"yandex",
	"baiduspider",
	"duckduckbot",
	"applebot",
	"pinterest",
	"redditbot",
	"vkshare",
	"skypeuripreview",
	"embedly",
	"quora link preview",
	"bitlybot",
	"nuzzel",
	"qwantify",
	"ia_archiver",
	"w3c_validator",
}

// IsBot reports whether the given User-Agent string belongs to a known
// crawler. An empty string always classifies as human: passing a human
// through is safe, serving a crawler document to a human is not.
func IsBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}

	ua := strings.ToLower(userAgent)
	for _, sig := range crawlerSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}

	return false
}
