// ABOUTME: Edge cache store wrapping the batch fetcher in a cache-aside read path
// ABOUTME: Misses compute synchronously and write back in a detached background task

package articles

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wikiscroll-api/core/domain"
	"wikiscroll-api/core/interfaces"
)

// DefaultTTL is how long a cached batch stays fresh.
const DefaultTTL = 5 * time.Minute

// writeTimeout bounds the detached cache write so it cannot leak a
// goroutine against a dead store.
const writeTimeout = 10 * time.Second

// CacheStatus reports whether a batch came from the cache or was computed.
type CacheStatus string

const (
	CacheHit  CacheStatus = "HIT"
	CacheMiss CacheStatus = "MISS"
)

// BatchFetcher is the slice of the fetcher the store needs.
type BatchFetcher interface {
	FetchBatch(ctx context.Context, src SourceConfig, lang string, count int) ([]domain.ArticleRecord, error)
}

// Store is the keyed read-through cache in front of the batch fetcher.
// Entries are replaced wholesale, never merged, so no locking beyond the
// cache backend's own atomic get/set is needed. Concurrent misses for the
// same key each compute their own batch; the redundant work is accepted.
type Store struct {
	deps    interfaces.Dependencies
	fetcher BatchFetcher
	ttl     time.Duration
}

// NewStore creates a new edge cache store instance
func NewStore(deps interfaces.Dependencies, fetcher BatchFetcher, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		deps:    deps,
		fetcher: fetcher,
		ttl:     ttl,
	}
}

// cacheKey builds the exact-triple cache key; distinct triples are fully
// independent entries.
func cacheKey(mode, lang string, count int) string {
	return fmt.Sprintf("articles:%s:%s:%d", mode, lang, count)
}

// GetOrCompute returns the batch for (mode, lang, count): the stored batch
// unchanged on a hit within TTL, otherwise a freshly computed one. The
// cache write after a miss happens in a detached goroutine with its own
// context so it can never delay or fail the response.
func (s *Store) GetOrCompute(ctx context.Context, mode, lang string, count int) (*domain.CachedBatch, CacheStatus, error) {
	key := cacheKey(mode, lang, count)

	if cached := s.getCached(ctx, key); cached != nil {
		return cached, CacheHit, nil
	}

	src := ConfigForMode(mode)
	records, err := s.fetcher.FetchBatch(ctx, src, lang, count)
	if err != nil {
		return nil, CacheMiss, err
	}

	batch := &domain.CachedBatch{
		Articles: records,
		CachedAt: s.now(),
	}

	go s.writeBack(key, batch)

	return batch, CacheMiss, nil
}

// getCached returns the stored batch for key, or nil on any miss:
// absent key, backend error, or an entry that no longer unmarshals.
func (s *Store) getCached(ctx context.Context, key string) *domain.CachedBatch {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var batch domain.CachedBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Discarding undecodable cache entry", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil
	}

	return &batch
}

// writeBack stores a computed batch. It runs detached from the request:
// its context is independent of the request's, and its failure is
// observable only in the logs.
func (s *Store) writeBack(key string, batch *domain.CachedBatch) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(batch)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Failed to serialize batch for cache", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.deps.Cache.Set(ctx, key, data, s.ttl); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}

func (s *Store) now() time.Time {
	if s.deps.Clock != nil {
		return s.deps.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
