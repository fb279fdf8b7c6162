package service

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/packwise/boxfit-service/internal/boxfit"
	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/metrics"
	"github.com/packwise/boxfit-service/internal/service/cache"
)

var (
	// DefaultCatalog defines the standard box catalog used when no
	// persisted or request-provided catalog is available.
	DefaultCatalog = []model.BoxSpec{
		{Name: "Small Mailer", Type: model.BoxTypeNormal, Dimensions: [3]float64{9, 6, 3}, Prices: []float64{1.10, 1.45, 1.80, 2.40}},
		{Name: "Medium Mailer", Type: model.BoxTypeNormal, Dimensions: [3]float64{12, 9, 4}, Prices: []float64{1.60, 2.05, 2.55, 3.30}},
		{Name: "Cube 10", Type: model.BoxTypeNormal, Dimensions: [3]float64{10, 10, 10}, Prices: []float64{2.20, 2.85, 3.50, 4.50}},
		{Name: "Cube 14", Type: model.BoxTypeNormal, Dimensions: [3]float64{14, 14, 14}, Prices: []float64{3.10, 3.95, 4.85, 6.20}},
		{Name: "Large Carton", Type: model.BoxTypeNormal, Dimensions: [3]float64{18, 14, 10}, Prices: []float64{3.60, 4.60, 5.60, 7.20}},
		{Name: "Wardrobe", Type: model.BoxTypeNormal, Dimensions: [3]float64{24, 20, 12}, Prices: []float64{5.40, 6.90, 8.40, 10.80}},
	}
)

// Recommender defines the interface for box recommendation operations.
type Recommender interface {
	Recommend(q boxfit.Query) []boxfit.Result
	RecommendWithBoxes(boxes []boxfit.Box, q boxfit.Query) []boxfit.Result
	// SetCatalog replaces the active catalog and clears the cache.
	SetCatalog(boxes []boxfit.Box)
	// InvalidateCache clears the recommendation cache (useful when the catalog changes).
	InvalidateCache()
}

// Option configures a RecommenderService.
type Option func(*RecommenderService)

// RecommenderService implements Recommender on top of the evaluation
// engine. It evaluates the full cross product of boxes, packing levels,
// and strategies for an item and ranks the candidates.
type RecommenderService struct {
	mu      sync.RWMutex
	catalog []boxfit.Box
	cache   cache.Cache
}

// NewRecommenderService creates a new RecommenderService with the given options.
func NewRecommenderService(opts ...Option) *RecommenderService {
	s := &RecommenderService{}

	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		boxes, err := model.ToBoxes(DefaultCatalog)
		if err != nil {
			// The default catalog is static and always valid.
			panic(err)
		}
		s.catalog = boxes
	}
	return s
}

// WithCatalog sets a custom box catalog for the recommender.
func WithCatalog(boxes []boxfit.Box) Option {
	return func(s *RecommenderService) {
		if len(boxes) > 0 {
			s.catalog = make([]boxfit.Box, len(boxes))
			copy(s.catalog, boxes)
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *RecommenderService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *RecommenderService) {
		s.cache = c
	}
}

// Recommend evaluates the queried item against the configured catalog.
func (s *RecommenderService) Recommend(q boxfit.Query) []boxfit.Result {
	start := time.Now()

	if s.cache != nil {
		if results, ok := s.cache.Get(queryKey(q)); ok {
			metrics.RecordRecommendation(time.Since(start), "cached")
			return results
		}
	}

	s.mu.RLock()
	catalog := s.catalog
	s.mu.RUnlock()

	results := boxfit.Evaluate(catalog, q)

	if s.cache != nil {
		s.cache.Set(queryKey(q), results)
	}

	metrics.RecordRecommendation(time.Since(start), "computed")
	for _, r := range results {
		metrics.RecordRecommendationTier(r.Recommendation.String())
	}
	return results
}

// RecommendWithBoxes evaluates the queried item against boxes provided in
// the request. Results for ad hoc catalogs are not cached.
func (s *RecommenderService) RecommendWithBoxes(boxes []boxfit.Box, q boxfit.Query) []boxfit.Result {
	if len(boxes) == 0 {
		return s.Recommend(q)
	}

	start := time.Now()
	results := boxfit.Evaluate(boxes, q)
	metrics.RecordRecommendation(time.Since(start), "computed")
	for _, r := range results {
		metrics.RecordRecommendationTier(r.Recommendation.String())
	}
	return results
}

// SetCatalog replaces the active catalog and clears the cache.
func (s *RecommenderService) SetCatalog(boxes []boxfit.Box) {
	if len(boxes) == 0 {
		return
	}
	replacement := make([]boxfit.Box, len(boxes))
	copy(replacement, boxes)

	s.mu.Lock()
	s.catalog = replacement
	s.mu.Unlock()

	s.InvalidateCache()
}

// InvalidateCache clears the recommendation cache.
func (s *RecommenderService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases background resources held by the cache, if any.
// Called from the application shutdown path.
func (s *RecommenderService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// queryKey builds a stable cache key from the query's item dimensions,
// filters, and sort mode.
func queryKey(q boxfit.Query) string {
	var b strings.Builder
	for _, d := range q.ItemDims {
		b.WriteString(strconv.FormatFloat(d, 'g', -1, 64))
		b.WriteByte('x')
	}
	b.WriteByte('|')
	for _, l := range q.Levels {
		b.WriteString(strconv.Itoa(int(l)))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, st := range q.Strategies {
		b.WriteString(strconv.Itoa(int(st)))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, t := range q.Tiers {
		b.WriteString(strconv.Itoa(int(t)))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(q.SortMode)))
	return b.String()
}
