// Package main is the entry point for the boxfit-service application.
//
// @title           Boxfit Service API
// @version         1.0.0
// @description     API for recommending shipping boxes for an item.
//
//	This service scores every box in the catalog against an item's dimensions
//	across packing levels and packing strategies, and ranks the results.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/packwise/boxfit-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Boxes
// @tag.description Box recommendation and catalog operations
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/packwise/boxfit-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/packwise/boxfit-service/config"
	"github.com/packwise/boxfit-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Error().Err(err).Msg("Server error")
	}
}
