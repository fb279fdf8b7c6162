// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/packwise/boxfit-service/config"
	"github.com/packwise/boxfit-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
// The returned cleanup function releases background resources (cache
// cleanup goroutine, MongoDB connection) and is safe to call once the
// server has stopped.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize business services (recommendation engine, catalog file)
	serviceComponents := InitializeServices(cfg)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database, serviceComponents.SeedCatalog)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Recommender, dbComponents, cfg)

	cleanup := func() {
		if stopper, ok := serviceComponents.Recommender.(interface{ Stop() }); ok {
			stopper.Stop()
		}
		if dbComponents != nil && dbComponents.DB != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := dbComponents.DB.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to close MongoDB connection")
			}
		}
	}

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config), cleanup
}
