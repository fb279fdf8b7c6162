package cache

import "github.com/packwise/boxfit-service/internal/boxfit"

// Cache defines the interface for recommendation cache operations.
type Cache interface {
	Get(key string) ([]boxfit.Result, bool)
	Set(key string, value []boxfit.Result)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
