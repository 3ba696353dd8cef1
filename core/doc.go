// Package core contains the business logic for the WikiScroll API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ArticleRecord, ArticleReference, NormalizedPreview)
// - articles: Random batch fetcher and the edge cache store in front of it
// - preview: Reference resolution and crawler preview rendering
// - botdetect: User-agent classification
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, clock)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "wikiscroll-api/core/articles"
//	    "wikiscroll-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Clock:      myClock,      // implements interfaces.Clock
//	}
//
//	// Create the fetcher and the edge cache in front of it
//	fetcher := articles.NewService(deps, articles.Options{})
//	store := articles.NewStore(deps, fetcher, articles.DefaultTTL)
//
//	batch, status, err := store.GetOrCompute(ctx, "wiki", "en", 10)
package core
