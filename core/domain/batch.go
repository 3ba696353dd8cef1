// ABOUTME: CachedBatch is the serialized value stored by the edge cache
// ABOUTME: A batch is replaced wholesale on refresh, never mutated in place

package domain

import "time"

// CachedBatch is an ordered batch of validated articles plus the time it
// was computed. It is the unit the edge cache stores and the API returns.
type CachedBatch struct {
	Articles []ArticleRecord `json:"articles"`
	CachedAt time.Time       `json:"cachedAt"`
}
