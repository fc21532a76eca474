package main

import (
	"os"

	"tableside/config"
	"tableside/helper"
	"tableside/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 { //nolint:mnd
		log.Fatal().Msg("usage: migrate up|down|step-up|drop|version")
	}

	cfg := config.Get()
	logger.Configure(cfg)

	action := os.Args[1]

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("migration failed")
	}
}
