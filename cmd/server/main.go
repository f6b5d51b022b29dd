package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/faqdesk/faqmatch/internal/catalog"
	"github.com/faqdesk/faqmatch/internal/config"
	"github.com/faqdesk/faqmatch/internal/match"
	"github.com/faqdesk/faqmatch/internal/server"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	cfg.ApplyEnv()

	// A malformed catalog is fatal: the process must not serve traffic
	// with a partially loaded knowledge base.
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load catalog")
	}

	m, err := match.New(cat, cfg.MatchConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid matcher configuration")
	}

	srv := server.New(cat, m, logger)
	r := srv.SetupRouter()

	logger.Info().Str("port", cfg.Server.Port).Int("entries", cat.Len()).Msg("Starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server exited")
	}
}
