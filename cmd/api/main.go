package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wellnav/internal/advice"
	"wellnav/internal/config"
	"wellnav/internal/geo"
	"wellnav/internal/mapview"
	"wellnav/internal/places"
	"wellnav/internal/profile"
	"wellnav/internal/server"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Give in-flight requests 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
	done <- true
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Every collaborator is constructed here and injected explicitly;
	// nothing holds process-wide client state.
	geocoder, err := geo.NewGeocoder(cfg.GeocodeURL, cfg.GoogleAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize geocoder")
	}

	pipeline, err := advice.NewGoogleAI(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize recommendation pipeline")
	}

	srv := server.New(cfg,
		profile.NewStore(cfg.UserDataFile),
		geocoder,
		places.NewFinder(cfg.OverpassURL),
		mapview.NewRenderer(cfg.StaticDir),
		pipeline,
	)

	apiServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, done)

	log.Info().Int("port", cfg.Port).Msg("listening")
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("http server error")
		os.Exit(1)
	}

	<-done
	log.Info().Msg("graceful shutdown complete")
}
