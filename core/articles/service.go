// ABOUTME: Random batch fetcher fanning out concurrent upstream requests and filtering the survivors
// ABOUTME: Individual fetch failures degrade the batch, they never abort it

package articles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
	"time"

	"wikiscroll-api/core/domain"
	coreerrors "wikiscroll-api/core/errors"
	"wikiscroll-api/core/interfaces"
	"wikiscroll-api/pkg/utils/htmltext"
)

const (
	// DefaultFanoutLimit bounds how many upstream requests a single batch
	// operation has in flight at once.
	DefaultFanoutLimit = 25

	// DefaultFetchTimeout bounds a single random-summary request so a hung
	// upstream call cannot hang the whole batch.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultLanguage is used when the caller supplies no language code.
	DefaultLanguage = "en"
)

// Options tunes the fetcher's concurrency behavior.
type Options struct {
	// FanoutLimit caps concurrent upstream requests; 0 means the default.
	FanoutLimit int

	// FetchTimeout bounds each individual request; 0 means the default.
	FetchTimeout time.Duration
}

// Service fetches validated batches of random articles from an upstream
// source variant.
type Service struct {
	deps         interfaces.Dependencies
	fanoutLimit  int
	fetchTimeout time.Duration
}

// NewService creates a new batch fetcher instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.FanoutLimit <= 0 {
		opts.FanoutLimit = DefaultFanoutLimit
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}

	return &Service{
		deps:         deps,
		fanoutLimit:  opts.FanoutLimit,
		fetchTimeout: opts.FetchTimeout,
	}
}

// randomSummary mirrors the upstream REST random-summary response.
type randomSummary struct {
	PageID      int    `json:"pageid"`
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ExtractHTML string `json:"extract_html"`
	Thumbnail   *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// FetchBatch returns up to count validated articles from the given source
// variant. It oversamples by the variant's factor, runs the requests
// concurrently, waits for all of them to settle, then filters and
// truncates. If fewer than count candidates survive the filter the short
// batch is returned as-is; there is no second round.
func (s *Service) FetchBatch(ctx context.Context, src SourceConfig, lang string, count int) ([]domain.ArticleRecord, error) {
	if count <= 0 {
		return []domain.ArticleRecord{}, nil
	}
	if lang == "" {
		lang = DefaultLanguage
	}

	attempts := int(math.Ceil(float64(count) * src.OversampleFactor))

	type fetchResult struct {
		record *domain.ArticleRecord
		err    error
	}

	resultsChan := make(chan fetchResult, attempts)
	semaphore := make(chan struct{}, s.fanoutLimit)
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultsChan <- fetchResult{err: ctx.Err()}
				return
			default:
			}

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			record, err := s.fetchRandom(ctx, src, lang)
			resultsChan <- fetchResult{record: record, err: err}
		}()
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	records := make([]domain.ArticleRecord, 0, count)
	var firstError error

	for result := range resultsChan {
		if result.err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Random article fetch failed", map[string]interface{}{
					"source": string(src.Source),
					"lang":   lang,
					"error":  result.err.Error(),
				})
			}
			if firstError == nil && errors.Is(result.err, context.Canceled) {
				firstError = result.err
			}
			continue
		}
		if len(records) < count && passesFilter(result.record) {
			records = append(records, *result.record)
		}
	}

	if firstError != nil {
		return records, firstError
	}

	return records, nil
}

// fetchRandom resolves one random article from the upstream summary
// endpoint and normalizes it. Any failure mode, network, status, or
// payload, comes back as an error for the caller to skip.
func (s *Service) fetchRandom(ctx context.Context, src SourceConfig, lang string) (*domain.ArticleRecord, error) {
	host := src.Host(lang)
	url := fmt.Sprintf("https://%s/api/rest_v1/page/random/summary", host)

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(fetchCtx, url)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: host, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{API: host, StatusCode: resp.StatusCode(), Message: "random summary failed"}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: host, Message: err.Error()}
	}

	var summary randomSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, &coreerrors.ExternalAPIError{API: host, Message: "malformed summary payload"}
	}

	return s.normalize(src, host, &summary), nil
}

// normalize converts an upstream summary into an ArticleRecord. The body
// is always plain text: the HTML extract is stripped when present, the
// plain extract used otherwise.
func (s *Service) normalize(src SourceConfig, host string, summary *randomSummary) *domain.ArticleRecord {
	body := summary.Extract
	if summary.ExtractHTML != "" {
		body = htmltext.Strip(summary.ExtractHTML)
	}

	var image string
	if summary.Thumbnail != nil {
		image = summary.Thumbnail.Source
	}

	pageURL := summary.ContentURLs.Desktop.Page
	if pageURL == "" {
		pageURL = fmt.Sprintf("https://%s/?curid=%d", host, summary.PageID)
	}

	prefix := domain.PrefixEncyclopedia
	if src.Source == domain.SourceTravelGuide {
		prefix = domain.PrefixTravelGuide
	}

	return &domain.ArticleRecord{
		ID:     prefix + strconv.Itoa(summary.PageID),
		Source: src.Source,
		Title:  summary.Title,
		Body:   body,
		Image:  image,
		URL:    pageURL,
	}
}
