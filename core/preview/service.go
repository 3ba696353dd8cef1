// ABOUTME: Preview service resolves a shared article reference to normalized metadata
// ABOUTME: Provides business logic for the crawler preview path independent of HTTP layer

package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"wikiscroll-api/core/domain"
	coreerrors "wikiscroll-api/core/errors"
	"wikiscroll-api/core/interfaces"
	"wikiscroll-api/pkg/utils/htmltext"
)

// DefaultImage is the placeholder used when an article has no thumbnail.
const DefaultImage = "https://wikiscroll.app/images/card-default.png"

// upstreamHosts maps a reference source to the host its metadata lives on.
// Shared references carry no language, so they resolve against the English
// projects.
var upstreamHosts = map[domain.Source]string{
	domain.SourceEncyclopedia: "en.wikipedia.org",
	domain.SourceTravelGuide:  "en.wikivoyage.org",
}

// Service resolves article references to preview metadata.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new preview service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// pageQueryResponse mirrors the MediaWiki action API query response
// (formatversion 2).
type pageQueryResponse struct {
	Query struct {
		Pages []struct {
			PageID    int    `json:"pageid"`
			Title     string `json:"title"`
			Extract   string `json:"extract"`
			FullURL   string `json:"fullurl"`
			Missing   bool   `json:"missing"`
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// Resolve turns a raw article reference into a NormalizedPreview.
// An unrecognized prefix or empty page id yields a NotFoundError without a
// network call; upstream failures yield an ExternalAPIError; a page the
// upstream reports missing yields a NotFoundError. The preview is never
// partial.
func (s *Service) Resolve(ctx context.Context, rawRef string) (*domain.NormalizedPreview, error) {
	ref, ok := domain.ParseReference(rawRef)
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: rawRef}
	}

	host := upstreamHosts[ref.Source]
	queryURL := fmt.Sprintf(
		"https://%s/w/api.php?action=query&pageids=%s&prop=extracts%%7Cpageimages%%7Cinfo&exintro=1&explaintext=1&exchars=400&inprop=url&pithumbsize=640&format=json&formatversion=2",
		host, ref.PageID,
	)

	resp, err := s.deps.HTTPClient.Get(ctx, queryURL)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: host, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{API: host, StatusCode: resp.StatusCode(), Message: "metadata query failed"}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: host, Message: err.Error()}
	}

	var decoded pageQueryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &coreerrors.ExternalAPIError{API: host, Message: "malformed metadata payload"}
	}

	if len(decoded.Query.Pages) == 0 {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: rawRef}
	}

	page := decoded.Query.Pages[0]
	if page.Missing || page.Title == "" {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: rawRef}
	}

	description := htmltext.Truncate(htmltext.SingleLine(page.Extract), domain.MaxPreviewDescription)

	image := DefaultImage
	if page.Thumbnail != nil && page.Thumbnail.Source != "" {
		image = page.Thumbnail.Source
	}

	canonical := page.FullURL
	if canonical == "" {
		canonical = fmt.Sprintf("https://%s/?curid=%s", host, ref.PageID)
	}

	return &domain.NormalizedPreview{
		Title:        page.Title,
		Description:  description,
		Image:        image,
		CanonicalURL: canonical,
		SourceLabel:  ref.Source.Label(),
	}, nil
}
