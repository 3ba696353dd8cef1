package articles

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"wikiscroll-api/core/domain"
	"wikiscroll-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is a map-backed Cache that signals writes so tests can wait
// for the detached write-back.
type mockCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	setErr  error
	wrote   chan string
}

func newMockCache() *mockCache {
	return &mockCache{
		entries: make(map[string][]byte),
		wrote:   make(chan string, 8),
	}
}

func (c *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return data, nil
}

func (c *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	if c.setErr == nil {
		c.entries[key] = value
	}
	err := c.setErr
	c.mu.Unlock()

	select {
	case c.wrote <- key:
	default:
	}
	return err
}

func (c *mockCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *mockCache) waitForWrite(timeout time.Duration) bool {
	select {
	case <-c.wrote:
		return true
	case <-time.After(timeout):
		return false
	}
}

// mockLogger discards all log output
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

// fixedClock always returns the same instant
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// stubFetcher is a canned BatchFetcher implementation
type stubFetcher struct {
	mu      sync.Mutex
	calls   int
	records []domain.ArticleRecord
	err     error
}

func (f *stubFetcher) FetchBatch(ctx context.Context, src SourceConfig, lang string, count int) ([]domain.ArticleRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.records) > count {
		return f.records[:count], nil
	}
	return f.records, nil
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
