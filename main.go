package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/01Amadeus01/crossword/config"
	"github.com/01Amadeus01/crossword/shell"
)

func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		panic(err)
	}

	var logger zerolog.Logger
	switch cfg.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logger = zerolog.New(os.Stderr).Level(zerolog.Disabled)
	}
	zerolog.DefaultContextLogger = &logger

	cfg.AdjustRelativePaths(exPath)
	logger.Debug().Msgf("loaded config: %v", cfg.AllSettings())

	sc := shell.NewShellController(cfg)
	sc.Loop()
	log.Info().Msg("bye")
}
