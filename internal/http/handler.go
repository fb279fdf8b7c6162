package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/packwise/boxfit-service/internal/boxfit"
	"github.com/packwise/boxfit-service/internal/domain/dto"
	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/metrics"
	"github.com/packwise/boxfit-service/internal/middleware"
	"github.com/packwise/boxfit-service/internal/service"
)

// catalogCache provides thread-safe caching of the active box catalog.
type catalogCache struct {
	boxes     atomic.Value // holds []boxfit.Box
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if the cache is expired/empty.
func (c *catalogCache) get() []boxfit.Box {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if boxes := c.boxes.Load(); boxes != nil {
				if b, ok := boxes.([]boxfit.Box); ok {
					return b
				}
			}
		}
	}
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *catalogCache) set(boxes []boxfit.Box) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.boxes.Store(boxes)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for box recommendation routes.
type Handler struct {
	recommender    service.Recommender
	catalogService service.CatalogService
	catalogCache   *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for active-catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(recommender service.Recommender, catalogService service.CatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		recommender:    recommender,
		catalogService: catalogService,
		catalogCache:   newCatalogCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getCatalog retrieves the active catalog from cache or database.
func (h *Handler) getCatalog(ctx context.Context) []boxfit.Box {
	// Check cache first
	if boxes := h.catalogCache.get(); boxes != nil {
		return boxes
	}

	// Cache miss - fetch from database
	if h.catalogService == nil {
		return nil
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.catalogService.GetActive(ctx)
	if err != nil || config == nil || len(config.Boxes) == 0 {
		return nil
	}

	boxes, err := model.ToBoxes(config.Boxes)
	if err != nil {
		return nil
	}

	// Cache the result
	h.catalogCache.set(boxes)
	return boxes
}

// InvalidateCatalogCache invalidates the active-catalog cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// Recommend handles POST /api/recommend requests.
//
// @Summary      Recommend boxes for an item
// @Description  Evaluates every catalog box across packing levels and packing strategies for the given item, classifies each candidate by feasibility, and returns them ranked by fit tightness or price. Request-provided boxes override the stored catalog.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        request body dto.RecommendRequest true "Item dimensions and filters"
// @Success      200 {object} dto.SuccessResponse "Ranked recommendations"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recommend [post]
func (h *Handler) Recommend(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordRecommendation(0, "validation_error")
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	query, err := req.ToQuery()
	if err != nil {
		metrics.RecordRecommendation(0, "validation_error")
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "recommend", "Box recommendation requested", map[string]interface{}{
				"item_dimensions": req.ItemDimensions,
				"has_inline_boxes": len(req.Boxes) > 0,
			})
		}
	}

	var results []boxfit.Result
	if len(req.Boxes) > 0 {
		// Use ad-hoc boxes from the request
		boxes, err := model.ToBoxes(req.Boxes)
		if err != nil {
			builder.Error(http.StatusBadRequest, err.Error(), err)
			return
		}
		results = h.recommender.RecommendWithBoxes(boxes, query)
	} else {
		// Use the stored catalog when one is active, the default otherwise
		if boxes := h.getCatalog(c.Request.Context()); len(boxes) > 0 {
			results = h.recommender.RecommendWithBoxes(boxes, query)
		} else {
			results = h.recommender.Recommend(query)
		}
	}

	builder.SuccessOK(dto.RecommendResponse{
		Item:    req.ItemDimensions,
		Count:   len(results),
		Results: results,
	})
}
