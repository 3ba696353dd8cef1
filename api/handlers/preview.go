// ABOUTME: Crawler-aware preview middleware in front of the client page
// ABOUTME: Bots with a resolvable article reference get a preview document, everyone else passes through

package handlers

import (
	"context"
	"net/http"

	"wikiscroll-api/core/botdetect"
	"wikiscroll-api/core/domain"
	"wikiscroll-api/core/interfaces"
	"wikiscroll-api/core/preview"
)

const previewCacheControl = "public, max-age=3600"

// PreviewResolver is the slice of the preview service the middleware needs.
type PreviewResolver interface {
	Resolve(ctx context.Context, rawRef string) (*domain.NormalizedPreview, error)
}

// PreviewMiddleware intercepts requests carrying an article reference in
// the "a" query parameter. Human requesters always pass through to the
// underlying page; so does any request whose reference cannot be resolved,
// so a broken preview is never served.
func PreviewMiddleware(resolver PreviewResolver, logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ref := r.URL.Query().Get("a")
			if ref == "" || !botdetect.IsBot(r.UserAgent()) {
				next.ServeHTTP(w, r)
				return
			}

			p, err := resolver.Resolve(r.Context(), ref)
			if err != nil {
				if logger != nil {
					logger.Debug("Preview resolution failed, passing through", map[string]interface{}{
						"ref":   ref,
						"error": err.Error(),
					})
				}
				next.ServeHTTP(w, r)
				return
			}

			doc := preview.Render(p, requestURL(r))

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Cache-Control", previewCacheControl)
			_, _ = w.Write([]byte(doc))
		})
	}
}

// requestURL reconstructs the externally visible URL of the request, which
// the preview document redirects human visitors back to.
func requestURL(r *http.Request) string {
	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + r.Host + r.URL.RequestURI()
}
