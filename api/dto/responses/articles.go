// ABOUTME: Response DTOs for the articles endpoint

package responses

import (
	"time"

	"wikiscroll-api/core/domain"
)

// ArticlesResponse is the JSON envelope returned by the batch endpoint.
type ArticlesResponse struct {
	// Articles is the validated batch, at most the requested count.
	Articles []domain.ArticleRecord `json:"articles"`

	// CachedAt is when the batch was computed.
	CachedAt time.Time `json:"cachedAt"`
}
