package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"graphpart/internal/config"
	"graphpart/internal/httpapi"
	"graphpart/internal/runner"
	"graphpart/pkg/algorithm"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	log.Info().Msg("starting graphpart server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Info().
		Str("address", cfg.Server.Address).
		Int("max_workers", cfg.Jobs.MaxWorkers).
		Dur("job_timeout", cfg.Jobs.JobTimeout).
		Str("asp_solver", cfg.ASP.SolverBinary).
		Msg("configuration loaded")

	registry := algorithm.NewRegistryWithDefaults(algorithm.Defaults{
		GreedyMaxRefineIterations: cfg.Algorithm.GreedyMaxRefineIterations,
		KLMaxIterations:           cfg.Algorithm.KLMaxIterations,
	})
	boundedRunner := runner.New(cfg.Jobs.MaxWorkers, cfg.Jobs.JobTimeout, cfg.Jobs.ResultTTL, cfg.Jobs.CleanupInterval)
	handlers := httpapi.NewHandlers(registry, cfg.ASP, boundedRunner, cfg.RNG)

	router := mux.NewRouter()
	httpapi.SetupRoutes(router, handlers)
	router.Use(httpapi.LoggingMiddleware)
	router.Use(httpapi.RecoveryMiddleware)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}).Handler(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("http server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server shutdown complete")
}
