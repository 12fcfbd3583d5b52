package main

import (
	"os"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/logger"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/server"
)

// @title SESWA Portal API
// @version 1.0
// @description Realtime backend for the SESWA student and alumni portal

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal or a listen error
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
