// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/packwise/boxfit-service/config"
	"github.com/packwise/boxfit-service/internal/circuitbreaker"
	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/repository"
	"github.com/packwise/boxfit-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	CatalogRepo           repository.BoxCatalogRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
	UserRepo              repository.UserRepositoryInterface
	TokenRepo             repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, seedCatalog []model.BoxSpec) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-box-catalogs",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	catalogRepo := repository.NewBoxCatalogRepository(db)
	catalogRepoWithCB := repository.NewBoxCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	// Seed the box catalog if none exists
	if err := initializeDefaultCatalog(catalogRepoWithCB, seedCatalog); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default box catalog")
	}

	return &DatabaseComponents{
		DB:                    db,
		CatalogRepo:           catalogRepoWithCB,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:    logsCB,
		UserRepo:              userRepo,
		TokenRepo:             tokenRepo,
	}
}

// initializeDefaultCatalog stores the seed catalog when no configuration is active.
func initializeDefaultCatalog(repo repository.BoxCatalogRepositoryInterface, seedCatalog []model.BoxSpec) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		if len(seedCatalog) == 0 {
			seedCatalog = service.DefaultCatalog
		}
		_, err := repo.Create(ctx, seedCatalog, "system")
		if err != nil {
			return err
		}
		log.Info().Int("boxes", len(seedCatalog)).Msg("Created default box catalog")
	}

	return nil
}
