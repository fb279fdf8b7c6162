// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/packwise/boxfit-service/config"
	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Recommender service.Recommender

	// SeedCatalog is the catalog used to seed the database when no
	// configuration is active yet. It comes from the catalog file when
	// one is configured, the built-in default otherwise.
	SeedCatalog []model.BoxSpec
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option

	seedCatalog := service.DefaultCatalog
	if cfg.Catalog.File != "" {
		specs, err := service.LoadCatalogFile(cfg.Catalog.File)
		if err != nil {
			log.Error().Err(err).Str("file", cfg.Catalog.File).
				Msg("Failed to load box catalog file - using the built-in catalog")
		} else {
			log.Info().Int("boxes", len(specs)).Str("file", cfg.Catalog.File).
				Msg("Loaded box catalog file")
			seedCatalog = specs

			boxes, err := model.ToBoxes(specs)
			if err == nil {
				opts = append(opts, service.WithCatalog(boxes))
			}
		}
	}

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	recommender := service.NewRecommenderService(opts...)

	return &ServiceComponents{
		Recommender: recommender,
		SeedCatalog: seedCatalog,
	}
}
