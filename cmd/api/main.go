package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iracd/iracd/pkg/api"
	"github.com/iracd/iracd/pkg/db"
	"github.com/iracd/iracd/pkg/irsend"
	"github.com/iracd/iracd/pkg/remote"

	_ "github.com/iracd/iracd/docs"
	_ "github.com/iracd/iracd/pkg/irproto/protocols"
)

// @title           iracd API
// @version         1.0
// @description     REST API for controlling air conditioners over infrared

// @host      localhost:8775
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/iracd/iracd.db)")
	serialDevice := flag.String("serial", "/dev/ttyUSB0", "Path to IR blaster serial device")
	dryRun := flag.Bool("dry-run", false, "Record frames instead of transmitting them")
	flag.Parse()

	ctx := context.Background()

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Run migrations
	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Bootstrap if needed (first run)
	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
		log.Info().Msg("Database bootstrapped successfully")
	}

	// Load configuration
	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("timezone", cfg.Timezone()).
		Str("api_address", cfg.APIAddress()).
		Msg("Configuration loaded")

	// Try to open the IR blaster; fall back to recording frames in memory
	var tx irsend.Transmitter
	dry := *dryRun
	if dry {
		log.Info().Msg("Dry-run mode, frames will be recorded instead of transmitted")
		tx = irsend.NewMemoryTransmitter()
	} else {
		serialTx, err := irsend.OpenSerial(*serialDevice)
		if err != nil {
			log.Warn().Err(err).Str("device", *serialDevice).Msg("IR blaster unavailable, recording frames instead")
			tx = irsend.NewMemoryTransmitter()
			dry = true
		} else {
			tx = serialTx
		}
	}

	svc, err := remote.NewManager(ctx, database, tx, dry)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create remote manager")
	}

	// Create and start API router
	router := api.NewRouter(svc)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		svc.Close()
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	// Start server
	addr := cfg.APIAddress()
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
