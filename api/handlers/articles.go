// ABOUTME: HTTP handler for the article batch endpoint
// ABOUTME: Parses and clamps query parameters, delegates to the edge cache store

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wikiscroll-api/api/dto/responses"
	"wikiscroll-api/core/articles"
	"wikiscroll-api/core/domain"
	"wikiscroll-api/core/interfaces"
)

const (
	defaultCount = 10
	maxCount     = 20

	batchCacheControl = "public, max-age=300"
)

// ArticleStore is the slice of the edge cache store the handler needs.
type ArticleStore interface {
	GetOrCompute(ctx context.Context, mode, lang string, count int) (*domain.CachedBatch, articles.CacheStatus, error)
}

// ArticlesHandler handles article batch HTTP requests
type ArticlesHandler struct {
	store  ArticleStore
	logger interfaces.Logger
}

// NewArticlesHandler creates a new articles handler
func NewArticlesHandler(store ArticleStore, logger interfaces.Logger) *ArticlesHandler {
	return &ArticlesHandler{
		store:  store,
		logger: logger,
	}
}

// RegisterRoutes registers the batch endpoint routes
func (h *ArticlesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/articles", h.GetArticles)
	r.Options("/api/articles", h.Preflight)
}

// GetArticles handles GET /api/articles
func (h *ArticlesHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Normalize the mode so unknown values share the default cache entry.
	mode := articles.ConfigForMode(query.Get("mode")).Mode

	lang := query.Get("lang")
	if lang == "" {
		lang = articles.DefaultLanguage
	}

	count := parseCount(query.Get("n"))

	batch, status, err := h.store.GetOrCompute(r.Context(), mode, lang, count)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("Batch computation failed", map[string]interface{}{
				"mode":  mode,
				"lang":  lang,
				"count": count,
				"error": err.Error(),
			})
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch articles")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", batchCacheControl)
	w.Header().Set("X-Cache", string(status))

	resp := responses.ArticlesResponse{
		Articles: batch.Articles,
		CachedAt: batch.CachedAt,
	}
	if resp.Articles == nil {
		resp.Articles = []domain.ArticleRecord{}
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil && h.logger != nil {
		h.logger.Warn("Failed to write batch response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Preflight handles OPTIONS /api/articles with an empty headers-only
// acknowledgment; the CORS middleware supplies the Access-Control headers.
func (h *ArticlesHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// parseCount clamps the requested batch size to [1, maxCount], falling
// back to the default when absent or unparsable.
func parseCount(raw string) int {
	if raw == "" {
		return defaultCount
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultCount
	}
	if n > maxCount {
		return maxCount
	}
	return n
}

// writeJSONError writes a minimal JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
