package http

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packwise/boxfit-service/internal/boxfit"
	"github.com/packwise/boxfit-service/internal/domain/dto"
	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/repository"
)

// mockRecommender is a testify mock for service.Recommender.
type mockRecommender struct {
	mock.Mock
}

func (m *mockRecommender) Recommend(q boxfit.Query) []boxfit.Result {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]boxfit.Result)
}

func (m *mockRecommender) RecommendWithBoxes(boxes []boxfit.Box, q boxfit.Query) []boxfit.Result {
	args := m.Called(boxes, q)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]boxfit.Result)
}

func (m *mockRecommender) SetCatalog(boxes []boxfit.Box) {
	m.Called(boxes)
}

func (m *mockRecommender) InvalidateCache() {
	m.Called()
}

// mockCatalogService is a testify mock for service.CatalogService.
type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *mockCatalogService) Create(ctx context.Context, boxes []model.BoxSpec, createdBy string) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, boxes, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *mockCatalogService) Update(ctx context.Context, id primitive.ObjectID, boxes []model.BoxSpec, updatedBy string) (*repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, id, boxes, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxCatalogConfig), args.Error(1)
}

func (m *mockCatalogService) List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BoxCatalogConfig), args.Error(1)
}

// mockAuthService is a testify mock for service.AuthService.
type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *mockAuthService) Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, username, password, name)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *mockAuthService) InvalidateToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *mockAuthService) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockAuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}
