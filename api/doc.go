// Package api provides the HTTP layer for the WikiScroll application.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Router assembly (chi + CORS + middleware)
// - handlers/: HTTP request handlers and the preview middleware
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # HTTP Surface
//
// GET /api/articles?mode=wiki|how&lang=en&n=1..20 returns a JSON batch of
// validated random articles with Cache-Control and X-Cache headers.
// OPTIONS /api/articles answers CORS preflights with headers only.
//
// Every other path serves the client app shell. When such a request
// carries an article reference (?a=w123) and a crawler User-Agent, the
// preview middleware serves a synthesized preview document instead; in
// every other case, including any resolution failure, the request passes
// through to the page unmodified.
package api
