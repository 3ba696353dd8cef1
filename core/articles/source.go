// ABOUTME: Source variant configuration for the random batch fetcher
// ABOUTME: Oversampling factors are tunable constants, not load-bearing truths

package articles

import (
	"fmt"

	"wikiscroll-api/core/domain"
)

// SourceConfig describes one upstream content source variant.
type SourceConfig struct {
	// Source tags the records produced from this variant.
	Source domain.Source

	// Mode is the API query value selecting this variant.
	Mode string

	// HostPattern is the upstream host with a %s slot for the language
	// code, e.g. "%s.wikipedia.org".
	HostPattern string

	// OversampleFactor is how many random candidates to request per
	// article wanted. A meaningful fraction of random articles fail the
	// validity filter, so the fetcher requests ceil(count*factor) and
	// filters afterward. The factors are empirically chosen.
	OversampleFactor float64
}

// Encyclopedia is the Wikipedia source variant.
var Encyclopedia = SourceConfig{
	Source:           domain.SourceEncyclopedia,
	Mode:             "wiki",
	HostPattern:      "%s.wikipedia.org",
	OversampleFactor: 2.5,
}

// TravelGuide is the Wikivoyage source variant. Its valid-article density
// is lower than the encyclopedia's, hence the higher factor.
var TravelGuide = SourceConfig{
	Source:           domain.SourceTravelGuide,
	Mode:             "how",
	HostPattern:      "%s.wikivoyage.org",
	OversampleFactor: 3.0,
}

// ConfigForMode returns the source variant for a mode query value.
// Unknown modes fall back to the encyclopedia.
func ConfigForMode(mode string) SourceConfig {
	if mode == TravelGuide.Mode {
		return TravelGuide
	}
	return Encyclopedia
}

// Host returns the upstream host for a language code.
func (c SourceConfig) Host(lang string) string {
	return fmt.Sprintf(c.HostPattern, lang)
}
