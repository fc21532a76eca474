package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tableside/config"
	"tableside/di"
	"tableside/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()
	logger.Configure(config.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	worker.Run(ctx)

	if err := worker.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close event bus")
	}

	log.Info().Msg("Worker stopped.")
}
