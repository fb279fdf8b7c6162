// Package app provides router configuration.
package app

import (
	"github.com/packwise/boxfit-service/config"
	"github.com/packwise/boxfit-service/internal/http"
	"github.com/packwise/boxfit-service/internal/repository"
	"github.com/packwise/boxfit-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	recommender service.Recommender,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var catalogRepo repository.BoxCatalogRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		catalogRepo = dbComponents.CatalogRepo
		loggingService = dbComponents.LoggingService
	}

	// Initialize catalog service
	var catalogService service.CatalogService
	if catalogRepo != nil {
		catalogService = service.NewCatalogService(catalogRepo)
	}

	handler := http.NewHandler(recommender, catalogService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_box_catalogs", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateBurst:      cfg.Server.RateBurst,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
		CatalogService: catalogService,
		AuthService:    authService,
		Recommender:    recommender,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
