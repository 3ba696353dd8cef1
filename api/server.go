// ABOUTME: Router assembly for the WikiScroll API
// ABOUTME: Wires CORS, request logging, the batch endpoint, and the preview middleware

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"wikiscroll-api/api/handlers"
	"wikiscroll-api/api/middleware"
	"wikiscroll-api/core/interfaces"
)

// RouterConfig holds everything the router assembly needs.
type RouterConfig struct {
	// Logger enables request logging when set.
	Logger interfaces.Logger

	// Articles serves the batch endpoint.
	Articles *handlers.ArticlesHandler

	// Resolver backs the preview middleware.
	Resolver handlers.PreviewResolver

	// Page is the underlying page handler the preview path passes
	// through to (the client app shell).
	Page http.Handler
}

// NewRouter assembles the chi router for the whole HTTP surface.
// The batch endpoint payload is public, read-only content, so it carries
// permissive cross-origin headers.
func NewRouter(cfg RouterConfig) chi.Router {
	router := chi.NewRouter()

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	router.Group(func(r chi.Router) {
		r.Use(corsMiddleware.Handler)
		cfg.Articles.RegisterRoutes(r)
	})

	page := cfg.Page
	if page == nil {
		page = http.NotFoundHandler()
	}

	router.With(handlers.PreviewMiddleware(cfg.Resolver, cfg.Logger)).Handle("/*", page)

	return router
}
