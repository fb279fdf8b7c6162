package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/packwise/boxfit-service/internal/domain/dto"
	"github.com/packwise/boxfit-service/internal/middleware"
	"github.com/packwise/boxfit-service/internal/service"
)

// CatalogHandler provides HTTP handlers for box catalog routes.
type CatalogHandler struct {
	catalogService service.CatalogService
	recommender    service.Recommender
	onUpdate       func()
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalogService service.CatalogService, recommender service.Recommender) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		recommender:    recommender,
	}
}

// OnUpdate registers a callback invoked after the catalog changes.
// Used to invalidate downstream caches of the active catalog.
func (h *CatalogHandler) OnUpdate(fn func()) {
	h.onUpdate = fn
}

// GetActiveCatalog handles GET /api/boxes requests.
//
// @Summary      Get active box catalog
// @Description  Returns the currently active box catalog configuration
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Active box catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "No active catalog found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [get]
func (h *CatalogHandler) GetActiveCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.catalogService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to load the box catalog", err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, "No active box catalog", nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"boxes":      config.Boxes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateCatalog handles PUT /api/boxes requests.
//
// @Summary      Replace the box catalog
// @Description  Stores a new box catalog configuration and makes it active
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdateCatalogRequest true "Box catalog configuration"
// @Success      200 {object} dto.SuccessResponse "Updated box catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [put]
func (h *CatalogHandler) UpdateCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	config, err := h.catalogService.Create(c.Request.Context(), req.Boxes, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to store the box catalog", err)
		return
	}

	if h.recommender != nil {
		h.recommender.InvalidateCache()
	}
	if h.onUpdate != nil {
		h.onUpdate()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_catalog", "Box catalog configuration updated", map[string]interface{}{
				"boxes":   len(req.Boxes),
				"version": config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"boxes":      config.Boxes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListCatalogs handles GET /api/boxes/history requests.
//
// @Summary      List box catalog history
// @Description  Returns all box catalog configurations, newest first
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Box catalog history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes/history [get]
func (h *CatalogHandler) ListCatalogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.catalogService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to load the catalog history", err)
		return
	}

	builder.SuccessOK(configs)
}
