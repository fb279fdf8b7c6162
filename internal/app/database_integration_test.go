//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packwise/boxfit-service/config"
	"github.com/packwise/boxfit-service/internal/domain/model"
)

func integrationSeedCatalog() []model.BoxSpec {
	return []model.BoxSpec{
		{
			Name:       "seed box",
			Type:       "normal",
			Dimensions: [3]float64{12, 9, 4},
			Prices:     []float64{1, 1.25, 1.5, 2},
		},
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg, integrationSeedCatalog())

		require.NotNil(t, components)
		assert.NotNil(t, components.CatalogRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.CatalogCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
		assert.NotNil(t, components.UserRepo)
		assert.NotNil(t, components.TokenRepo)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg, integrationSeedCatalog())
		assert.Nil(t, components)
	})

	t.Run("seed catalog initialization", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		seed := []model.BoxSpec{
			{
				Name:       "integration mailer",
				Type:       "normal",
				Dimensions: [3]float64{12, 9, 4},
				Prices:     []float64{1, 1.25, 1.5, 2},
			},
		}
		components := InitializeDatabase(cfg, seed)

		require.NotNil(t, components)

		// Verify the seed catalog was stored as the active configuration
		active, err := components.CatalogRepo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		require.Len(t, active.Boxes, 1)
		assert.Equal(t, "integration mailer", active.Boxes[0].Name)
		assert.Equal(t, "system", active.CreatedBy)
	})

	t.Run("existing catalog is not overwritten", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		first := InitializeDatabase(cfg, integrationSeedCatalog())
		require.NotNil(t, first)

		// A second initialization against the same database keeps the
		// catalog seeded by the first one.
		second := InitializeDatabase(cfg, []model.BoxSpec{
			{
				Name:       "other box",
				Type:       "normal",
				Dimensions: [3]float64{8, 8, 8},
				Prices:     []float64{1, 1, 1, 1},
			},
		})
		require.NotNil(t, second)

		active, err := second.CatalogRepo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		require.Len(t, active.Boxes, 1)
		assert.Equal(t, "seed box", active.Boxes[0].Name)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}

		components := InitializeDatabase(cfg, integrationSeedCatalog())
		require.NotNil(t, components)

		stats := components.CatalogCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}
