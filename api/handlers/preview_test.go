package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wikiscroll-api/core/domain"
	coreerrors "wikiscroll-api/core/errors"
	"wikiscroll-api/core/preview"
)

const crawlerUA = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"

func pagePassThrough() (http.Handler, *bool) {
	served := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
		_, _ = w.Write([]byte("app shell"))
	}), &served
}

func resolvedPreview() *domain.NormalizedPreview {
	return &domain.NormalizedPreview{
		Title:        "Mount Fuji",
		Description:  "The highest mountain in Japan.",
		Image:        "https://upload.wikimedia.org/fuji.jpg",
		CanonicalURL: "https://en.wikipedia.org/wiki/Mount_Fuji",
		SourceLabel:  "Wikipedia",
	}
}

func TestPreviewMiddleware_BotWithReference_ServesPreview(t *testing.T) {
	resolver := &mockResolver{
		resolveFunc: func(ctx context.Context, rawRef string) (*domain.NormalizedPreview, error) {
			if rawRef != "w12345" {
				t.Errorf("resolver called with %q, want w12345", rawRef)
			}
			return resolvedPreview(), nil
		},
	}
	page, served := pagePassThrough()
	handler := PreviewMiddleware(resolver, nopLogger{})(page)

	req := httptest.NewRequest(http.MethodGet, "/?a=w12345", nil)
	req.Header.Set("User-Agent", crawlerUA)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if *served {
		t.Error("page should not be served when a preview is rendered")
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Mount Fuji — "+preview.ProductName+"</title>") {
		t.Error("preview title should end with the product name")
	}
	if !strings.Contains(body, `og:image" content="https://upload.wikimedia.org/fuji.jpg"`) {
		t.Error("preview should carry a non-empty image meta field")
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q, want public, max-age=3600", got)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", got)
	}
}

func TestPreviewMiddleware_HumanPassesThrough(t *testing.T) {
	resolver := &mockResolver{}
	page, served := pagePassThrough()
	handler := PreviewMiddleware(resolver, nopLogger{})(page)

	req := httptest.NewRequest(http.MethodGet, "/?a=w12345", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh) Safari/605.1.15")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*served {
		t.Error("human requests must pass through unmodified")
	}
	if resolver.calls != 0 {
		t.Error("resolver should not be called for human requests")
	}
}

func TestPreviewMiddleware_NoReferencePassesThrough(t *testing.T) {
	resolver := &mockResolver{}
	page, served := pagePassThrough()
	handler := PreviewMiddleware(resolver, nopLogger{})(page)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", crawlerUA)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*served {
		t.Error("requests without a reference must pass through")
	}
	if resolver.calls != 0 {
		t.Error("resolver should not be called without a reference")
	}
}

func TestPreviewMiddleware_NotFoundPassesThrough(t *testing.T) {
	resolver := &mockResolver{
		resolveFunc: func(ctx context.Context, rawRef string) (*domain.NormalizedPreview, error) {
			return nil, &coreerrors.NotFoundError{Resource: "article", ID: rawRef}
		},
	}
	page, served := pagePassThrough()
	handler := PreviewMiddleware(resolver, nopLogger{})(page)

	req := httptest.NewRequest(http.MethodGet, "/?a=w99999", nil)
	req.Header.Set("User-Agent", crawlerUA)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*served {
		t.Error("unresolvable references must pass through, never serve a broken preview")
	}
}

func TestPreviewMiddleware_UpstreamFailurePassesThrough(t *testing.T) {
	resolver := &mockResolver{
		resolveFunc: func(ctx context.Context, rawRef string) (*domain.NormalizedPreview, error) {
			return nil, errors.New("upstream down")
		},
	}
	page, served := pagePassThrough()
	handler := PreviewMiddleware(resolver, nopLogger{})(page)

	req := httptest.NewRequest(http.MethodGet, "/?a=w12345", nil)
	req.Header.Set("User-Agent", crawlerUA)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*served {
		t.Error("upstream failures must degrade to pass-through")
	}
}

func TestRequestURL_UsesForwardedProto(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://wikiscroll.app/?a=w1", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	if got := requestURL(req); got != "https://wikiscroll.app/?a=w1" {
		t.Errorf("requestURL = %q", got)
	}
}
