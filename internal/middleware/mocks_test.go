package middleware

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packwise/boxfit-service/internal/domain/dto"
	"github.com/packwise/boxfit-service/internal/domain/model"
)

// mockAuthService is a testify mock for service.AuthService.
type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	var user *model.User
	if v := args.Get(0); v != nil {
		pair = v.(*dto.TokenPair)
	}
	if v := args.Get(1); v != nil {
		user = v.(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *mockAuthService) Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, username, password, name)
	var pair *dto.TokenPair
	var user *model.User
	if v := args.Get(0); v != nil {
		pair = v.(*dto.TokenPair)
	}
	if v := args.Get(1); v != nil {
		user = v.(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if v := args.Get(0); v != nil {
		return v.(*dto.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if v := args.Get(0); v != nil {
		return v.(*dto.Claims), args.Error(1)
	}
	return nil, args.Error(1)
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

// mockLoggingService is a testify mock for service.LoggingService.
// Created is closed-over via a channel so tests can wait for the async persist.
type mockLoggingService struct {
	mock.Mock
	created chan *model.LogEntry
}

func newMockLoggingService() *mockLoggingService {
	return &mockLoggingService{created: make(chan *model.LogEntry, 8)}
}

func (m *mockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	if m.created != nil {
		m.created <- entry
	}
	return args.Error(0)
}

func (m *mockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *mockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if v := args.Get(0); v != nil {
		return v.([]model.LogEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
