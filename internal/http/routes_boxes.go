package http

import (
	"github.com/gin-gonic/gin"

	"github.com/packwise/boxfit-service/internal/service"
)

// BoxRoutes handles recommendation and catalog route registration.
type BoxRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
}

// NewBoxRoutes creates a new BoxRoutes instance. Catalog routes are only
// registered when a catalog service is available.
func NewBoxRoutes(handler *Handler, catalogService service.CatalogService, recommender service.Recommender) *BoxRoutes {
	r := &BoxRoutes{handler: handler}
	if catalogService != nil {
		r.catalogHandler = NewCatalogHandler(catalogService, recommender)
		if handler != nil {
			r.catalogHandler.OnUpdate(handler.InvalidateCatalogCache)
		}
	}
	return r
}

// GetHandler returns the recommendation handler.
func (r *BoxRoutes) GetHandler() *Handler {
	return r.handler
}

// RegisterPublicRoutes registers box routes without authentication.
func (r *BoxRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommend", r.handler.Recommend)
	if r.catalogHandler != nil {
		rg.GET("/boxes", r.catalogHandler.GetActiveCatalog)
		rg.PUT("/boxes", r.catalogHandler.UpdateCatalog)
		rg.GET("/boxes/history", r.catalogHandler.ListCatalogs)
	}
}

// RegisterProtectedRoutes registers box routes on an authenticated group.
func (r *BoxRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/recommend", r.handler.Recommend)
	if r.catalogHandler != nil {
		rg.GET("/boxes", r.catalogHandler.GetActiveCatalog)
		rg.PUT("/boxes", r.catalogHandler.UpdateCatalog)
		rg.GET("/boxes/history", r.catalogHandler.ListCatalogs)
	}
}
