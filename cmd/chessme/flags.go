// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessme-go/internal/config"
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/logger"
)

var (
	// Output options
	outputFile     = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput     = flag.Bool("J", false, "Output in JSON format")
	showPlacements = flag.Bool("placements", false, "List the placement string after every move")
	whiteName      = flag.String("white", "", "White player name for scripts without a White tag")
	blackName      = flag.String("black", "", "Black player name for scripts without a Black tag")
	eventName      = flag.String("event", "", "Event tag value")

	// Replay options
	moveFilter = flag.String("filter", "", "Move filter for results: kingsafe or structural")
	keepGoing  = flag.Bool("keep-going", false, "Keep replaying moves after the game has ended")
	numWorkers = flag.Int("workers", 0, "Number of scripts replayed in parallel (0 = from config)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position was already output")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Archive
	archiveDir  = flag.String("archive", "", "Archive finished games in this directory")
	listArchive = flag.Bool("list", false, "List archived games and exit")
	showGame    = flag.String("show", "", "Print the archived game with this ID and exit")

	// Logging and configuration
	logLevel = flag.String("log", "", "Log level: debug, info, warn or error")
	logFile  = flag.String("l", "", "Write log messages to this file")
	noColor  = flag.Bool("no-color", false, "Disable colored log output")
	envFile  = flag.String("env", "", "Load CHESSME_* settings from this file")
	quiet    = flag.Bool("s", false, "Silent mode: no summary line")

	// Help
	help    = flag.Bool("help", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides cfg with every flag given on the command line.
func applyFlags(cfg *config.Config) error {
	b := config.From(cfg)

	if *logLevel != "" {
		level, err := logger.ParseLevel(*logLevel)
		if err != nil {
			return err
		}
		b.WithLogLevel(level)
	}
	if *moveFilter != "" {
		filter, err := engine.ParseMoveFilter(*moveFilter)
		if err != nil {
			return err
		}
		b.WithMoveFilter(filter)
	}
	if *archiveDir != "" {
		b.WithArchiveDir(*archiveDir)
	}
	if *numWorkers > 0 {
		b.WithWorkers(*numWorkers)
	}
	if *jsonOutput {
		b.WithFormat("json")
	}
	if *showPlacements {
		b.WithPlacements(true)
	}
	if *eventName != "" {
		b.WithEvent(*eventName)
	}
	b.WithPlayers(*whiteName, *blackName)

	cfg = b.Build()
	if *keepGoing {
		cfg.Filter.StopAtResult = false
	}
	if *noColor {
		cfg.LogColors = false
	}
	return cfg.Validate()
}
