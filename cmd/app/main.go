package main

import (
	"tableside/config"
	"tableside/di"
	"tableside/helper"
	"tableside/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Tableside API
// @version 1.0
// @description Restaurant table reservations, table assignment and the daily seating board.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
