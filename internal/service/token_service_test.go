package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packwise/boxfit-service/internal/domain/dto"
	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/service"
)

func testTokenConfig() service.TokenConfig {
	return service.TokenConfig{
		SecretKey:        "test-secret-key",
		RefreshSecretKey: "test-refresh-secret-key",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
}

func TestTokenService_StoreScopedClaims(t *testing.T) {
	mockTokenRepo := new(mockTokenRepository)
	mockTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
	mockTokenRepo.On("IsBlacklisted", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	tokenService := service.NewTokenService(mockTokenRepo, testTokenConfig())

	user := &model.User{
		ID:    primitive.NewObjectID(),
		Email: "station@example.com",
		Name:  "Station Seven",
		Store: "station-7",
	}

	pair, err := tokenService.GenerateTokenPair(context.Background(), user)
	require.NoError(t, err)

	// The store scope survives the round trip through both tokens.
	claims, err := tokenService.ValidateAccessToken(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "station-7", claims.Store)
	assert.Equal(t, user.ID, claims.UserID)

	refreshClaims, err := tokenService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "station-7", refreshClaims.Store)
}

func TestTokenService_UnscopedAccount(t *testing.T) {
	mockTokenRepo := new(mockTokenRepository)
	mockTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
	mockTokenRepo.On("IsBlacklisted", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	tokenService := service.NewTokenService(mockTokenRepo, testTokenConfig())

	user := &model.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Name:  "Admin",
	}

	pair, err := tokenService.GenerateTokenPair(context.Background(), user)
	require.NoError(t, err)

	claims, err := tokenService.ValidateAccessToken(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Empty(t, claims.Store)
}

func TestTokenService_RejectsForeignIssuer(t *testing.T) {
	mockTokenRepo := new(mockTokenRepository)
	mockTokenRepo.On("IsBlacklisted", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	tokenService := service.NewTokenService(mockTokenRepo, testTokenConfig())

	// A token signed with the right secret but minted by another service
	// must not validate.
	foreign := &service.ClaimsWithJWT{
		Claims: dto.Claims{
			UserID: primitive.NewObjectID(),
			Email:  "intruder@example.com",
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "other-service",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, foreign).
		SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = tokenService.ValidateAccessToken(context.Background(), signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenService_BlacklistKeepsTokenType(t *testing.T) {
	mockTokenRepo := new(mockTokenRepository)
	mockTokenRepo.On("Create", mock.Anything, mock.MatchedBy(func(token *model.Token) bool {
		return token.Type == model.TokenTypeRefresh
	})).Return(nil)

	tokenService := service.NewTokenService(mockTokenRepo, testTokenConfig())

	user := &model.User{ID: primitive.NewObjectID(), Email: "station@example.com"}
	pair, err := tokenService.GenerateTokenPair(context.Background(), user)
	require.NoError(t, err)

	mockTokenRepo.On("Create", mock.Anything, mock.MatchedBy(func(token *model.Token) bool {
		return token.Type == model.TokenTypeBlacklist && token.Token == pair.AccessToken
	})).Return(nil)

	require.NoError(t, tokenService.InvalidateAccessToken(context.Background(), pair.AccessToken))
	mockTokenRepo.AssertExpectations(t)
}
