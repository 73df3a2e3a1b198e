package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"aidforpaws/internal/adapter"
	"aidforpaws/internal/infra"
	"aidforpaws/internal/service"
	"aidforpaws/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadStoreConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("component", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := adapter.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	donations := service.NewDonationService(stores.Donations)
	audit := worker.NewAuditWorker(donations, cfg.AuditInterval, logger)

	if err := audit.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("worker stopped with error")
		return
	}
	logger.Info().Msg("worker stopped")
}
