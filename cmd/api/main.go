package main

import (
	"os"

	"github.com/yigit/coursecatalog/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/coursecatalog/internal/server"
)

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, BuildDependencies and SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
