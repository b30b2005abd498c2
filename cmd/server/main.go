package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"supermind-backend/internal/config"
	"supermind-backend/internal/handlers"
	"supermind-backend/internal/logging"
	"supermind-backend/internal/router"
	"supermind-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Configure Logging ────
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		logger.Warn().Err(err).Str("file", cfg.LogFile).Msg("Log file unavailable, logging to stderr")
	}
	log.Logger = logger
	logger.Info().Str("env", cfg.Env).Msg("Starting chat relay")

	// ──── Step 3: Initialize Langflow Relay ────
	langflowService, err := services.NewLangflowService(
		cfg.LangflowURL(),
		config.TokenFromEnv(config.TokenEnvKey),
		cfg.DefaultInput,
		cfg.LangflowTimeout,
		services.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Langflow relay initialization failed")
	}
	logger.Info().
		Str("endpoint", cfg.LangflowURL()).
		Dur("timeout", cfg.LangflowTimeout).
		Msg("Langflow relay initialized")

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(langflowService, logger)
	dashboardHandler := handlers.NewDashboardHandler(services.NewAnalyticsService())

	// ──── Step 5: Start HTTP Server ────
	r := router.New(logger, chatHandler, dashboardHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Leaves room for the upstream call to hit its own timeout first.
		WriteTimeout: cfg.LangflowTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Strs("cors_origins", cfg.AllowedOrigins).Msgf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Server error")
		os.Exit(1)
	}
}
