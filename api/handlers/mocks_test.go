package handlers

import (
	"context"
	"time"

	"wikiscroll-api/core/articles"
	"wikiscroll-api/core/domain"
)

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// mockStore is a canned ArticleStore implementation
type mockStore struct {
	getOrComputeFunc func(ctx context.Context, mode, lang string, count int) (*domain.CachedBatch, articles.CacheStatus, error)
}

func (m *mockStore) GetOrCompute(ctx context.Context, mode, lang string, count int) (*domain.CachedBatch, articles.CacheStatus, error) {
	if m.getOrComputeFunc != nil {
		return m.getOrComputeFunc(ctx, mode, lang, count)
	}
	return &domain.CachedBatch{Articles: []domain.ArticleRecord{}, CachedAt: time.Now()}, articles.CacheMiss, nil
}

// mockResolver is a canned PreviewResolver implementation
type mockResolver struct {
	resolveFunc func(ctx context.Context, rawRef string) (*domain.NormalizedPreview, error)
	calls       int
}

func (m *mockResolver) Resolve(ctx context.Context, rawRef string) (*domain.NormalizedPreview, error) {
	m.calls++
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, rawRef)
	}
	return nil, nil
}

// travelRecords builds a batch of n travel-guide records
func travelRecords(n int) []domain.ArticleRecord {
	records := make([]domain.ArticleRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.ArticleRecord{
			ID:     "v" + string(rune('1'+i)),
			Source: domain.SourceTravelGuide,
			Title:  "Destination",
			Body:   "A long enough plain text body describing the destination for handler tests to rely on safely.",
			Image:  "https://img/dest.jpg",
			URL:    "https://en.wikivoyage.org/wiki/Destination",
		})
	}
	return records
}
