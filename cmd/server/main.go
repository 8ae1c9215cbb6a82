// Package main is the entry point for the Boardroom web application: the
// landing page and design-review UI for PCB projects (BOM grouping, supplier
// links, comments, version history, schematic viewer).
//
// The server holds all board state in memory and serves the pre-built
// frontend from disk. Startup fails fast if the frontend build output is
// missing, since a static-file server with nothing to serve has no recovery
// path.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charlespers/boardroom/internal/config"
	"github.com/charlespers/boardroom/internal/server"
	"github.com/charlespers/boardroom/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting Boardroom")

	// Initialize HTTP server. This validates the static asset directory and
	// seeds the in-memory board state; any failure here terminates the
	// process before a port is bound.
	srv, err := server.New(server.Config{
		Log:    log,
		Config: cfg,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Start server in goroutine so main can wait on shutdown signals.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown: in-flight requests get up to 10 seconds to finish.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
