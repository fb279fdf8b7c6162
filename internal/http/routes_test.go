package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/packwise/boxfit-service/internal/repository"
)

// Tests for AuthRoutes

func TestNewAuthRoutes(t *testing.T) {
	authService := new(mockAuthService)

	routes := NewAuthRoutes(authService)

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.handler)
}

func TestAuthRoutes_RegisterPublicRoutes(t *testing.T) {
	authService := new(mockAuthService)
	routes := NewAuthRoutes(authService)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	// Verify routes are registered by checking if they respond
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/refresh"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Should not return 404 - route exists
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestAuthRoutes_RegisterProtectedRoutes(t *testing.T) {
	authService := new(mockAuthService)
	routes := NewAuthRoutes(authService)

	router := gin.New()
	api := router.Group("/api")

	routes.RegisterProtectedRoutes(api, &RouterConfig{})

	// Verify logout route is registered
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Should not return 404 - route exists (will fail auth but that's expected)
	assert.NotEqual(t, http.StatusNotFound, w.Code)
}

func TestAuthRoutes_GetProtectedGroup(t *testing.T) {
	authService := new(mockAuthService)
	routes := NewAuthRoutes(authService)

	router := gin.New()
	api := router.Group("/api")

	protected := routes.GetProtectedGroup(api)

	assert.NotNil(t, protected)
}

// Tests for BoxRoutes

func TestNewBoxRoutes(t *testing.T) {
	t.Run("with catalog service", func(t *testing.T) {
		recommender := new(mockRecommender)
		catalogService := new(mockCatalogService)
		handler := NewHandler(recommender, catalogService)

		routes := NewBoxRoutes(handler, catalogService, recommender)

		assert.NotNil(t, routes)
		assert.NotNil(t, routes.handler)
		assert.NotNil(t, routes.catalogHandler)
	})

	t.Run("without catalog service", func(t *testing.T) {
		recommender := new(mockRecommender)
		handler := NewHandler(recommender, nil)

		routes := NewBoxRoutes(handler, nil, recommender)

		assert.NotNil(t, routes)
		assert.NotNil(t, routes.handler)
		assert.Nil(t, routes.catalogHandler)
	})
}

func TestBoxRoutes_RegisterPublicRoutes(t *testing.T) {
	recommender := new(mockRecommender)
	handler := NewHandler(recommender, nil)

	// Test without catalog service to avoid mock setup complexity
	routes := NewBoxRoutes(handler, nil, recommender)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	// Recommend route should exist
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)

	// Catalog routes should NOT exist
	req2 := httptest.NewRequest(http.MethodGet, "/api/boxes", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestBoxRoutes_RegisterPublicRoutes_WithCatalogService(t *testing.T) {
	recommender := new(mockRecommender)
	catalogService := new(mockCatalogService)
	handler := NewHandler(recommender, catalogService)

	routes := NewBoxRoutes(handler, catalogService, recommender)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/recommend"},
		{http.MethodGet, "/api/boxes"},
		{http.MethodPut, "/api/boxes"},
		{http.MethodGet, "/api/boxes/history"},
	}

	catalogService.On("GetActive", mock.Anything).
		Return(&repository.BoxCatalogConfig{Boxes: testCatalogSpecs(), Active: true}, nil).Maybe()
	catalogService.On("List", mock.Anything, 0).
		Return([]repository.BoxCatalogConfig{}, nil).Maybe()

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestBoxRoutes_GetHandler(t *testing.T) {
	recommender := new(mockRecommender)
	handler := NewHandler(recommender, nil)
	routes := NewBoxRoutes(handler, nil, recommender)

	assert.Equal(t, handler, routes.GetHandler())
}

func TestBoxRoutes_RegisterProtectedRoutes(t *testing.T) {
	recommender := new(mockRecommender)
	handler := NewHandler(recommender, nil)

	routes := NewBoxRoutes(handler, nil, recommender)

	router := gin.New()
	api := router.Group("/api")

	routes.RegisterProtectedRoutes(api, &RouterConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusNotFound, w.Code)
}
