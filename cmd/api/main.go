package main

import (
	"os"

	"github.com/bilguun/eduview/internal/pkg/logger" // Still needed for initial error logging
	"github.com/bilguun/eduview/internal/server"
)

func main() {
	// Initialize the server with all its dependencies: config, logger, the
	// parsed timetable store, and the router.
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
