package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"shop-api/internal/config"
	"shop-api/internal/logger"
	"shop-api/internal/router"
	"shop-api/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.New(cfg.LogLevel)
	log.Info().Msg("Starting application")

	seedUsers, err := store.SeedUsers()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed users")
	}
	users := store.NewUserStore(seedUsers)
	catalog := store.NewCatalog(store.SeedProducts())
	log.Info().Int("users", len(seedUsers)).Msg("In-memory stores initialized")

	r := router.SetupRouter(cfg, users, catalog, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
