//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packwise/boxfit-service/config"
	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/repository"
	"github.com/packwise/boxfit-service/internal/service"
)

type mockBoxCatalogRepository struct {
	mock.Mock
}

func (m *mockBoxCatalogRepository) GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *mockBoxCatalogRepository) Create(ctx context.Context, boxes []model.BoxSpec, createdBy string) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, boxes, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *mockBoxCatalogRepository) Update(ctx context.Context, id primitive.ObjectID, boxes []model.BoxSpec, updatedBy string) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, id, boxes, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *mockBoxCatalogRepository) List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BoxCatalogConfig), args.Error(1)
}

func testSeedCatalog() []model.BoxSpec {
	return []model.BoxSpec{
		{
			Name:       "seed box",
			Type:       "normal",
			Dimensions: [3]float64{12, 9, 4},
			Prices:     []float64{1, 1.25, 1.5, 2},
		},
	}
}

func TestInitializeDefaultCatalog(t *testing.T) {
	tests := []struct {
		name        string
		seedCatalog []model.BoxSpec
		setupMock   func(*mockBoxCatalogRepository)
		wantError   bool
	}{
		{
			name:        "no active config creates seed catalog",
			seedCatalog: testSeedCatalog(),
			setupMock: func(m *mockBoxCatalogRepository) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				created := &repository.BoxCatalogConfig{
					ID:     primitive.NewObjectID(),
					Boxes:  testSeedCatalog(),
					Active: true,
				}
				m.On("Create", mock.Anything, testSeedCatalog(), "system").Return(created, nil).Once()
			},
		},
		{
			name:        "active config exists skips creation",
			seedCatalog: testSeedCatalog(),
			setupMock: func(m *mockBoxCatalogRepository) {
				active := &repository.BoxCatalogConfig{
					ID:     primitive.NewObjectID(),
					Boxes:  testSeedCatalog(),
					Active: true,
				}
				m.On("GetActive", mock.Anything).Return(active, nil).Once()
			},
		},
		{
			name:        "empty seed falls back to the built-in catalog",
			seedCatalog: nil,
			setupMock: func(m *mockBoxCatalogRepository) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				created := &repository.BoxCatalogConfig{
					ID:     primitive.NewObjectID(),
					Boxes:  service.DefaultCatalog,
					Active: true,
				}
				m.On("Create", mock.Anything, service.DefaultCatalog, "system").Return(created, nil).Once()
			},
		},
		{
			name:        "get active error",
			seedCatalog: testSeedCatalog(),
			setupMock: func(m *mockBoxCatalogRepository) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name:        "create error",
			seedCatalog: testSeedCatalog(),
			setupMock: func(m *mockBoxCatalogRepository) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.Anything, "system").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockBoxCatalogRepository)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := initializeDefaultCatalog(mockRepo, tt.seedCatalog)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false}, nil)
	assert.Nil(t, components)
}

func TestInitializeDatabase_ConnectFailure(t *testing.T) {
	cfg := config.DatabaseConfig{
		Enabled:      true,
		URI:          "mongodb://127.0.0.1:1/?connectTimeoutMS=100&serverSelectionTimeoutMS=100",
		DatabaseName: "boxfit_test",
	}
	components := InitializeDatabase(cfg, nil)
	assert.Nil(t, components)
}
