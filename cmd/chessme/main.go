// chessme replays chess move scripts, reports the result of each game and
// archives the finished games.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chessme-go/internal/archive"
	"github.com/lgbarn/chessme-go/internal/config"
	"github.com/lgbarn/chessme-go/internal/hashing"
	"github.com/lgbarn/chessme-go/internal/logger"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessme version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	log := setupLogger(cfg)
	logger.SetDefault(log)

	ctx := &ProcessingContext{cfg: cfg, log: log}

	if cfg.ArchiveDir != "" || *listArchive || *showGame != "" {
		a, err := archive.Open(cfg.ArchiveDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening archive: %v\n", err)
			os.Exit(1)
		}
		ctx.archive = a
	}

	if *listArchive || *showGame != "" {
		exit(ctx, runArchiveQuery(ctx.archive))
	}

	if *suppressDuplicates {
		ctx.detector = hashing.NewDuplicateDetector(false, *duplicateCapacity)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := setupOutputFile()
	sum, err := processAllInputs(runCtx, ctx, flag.Args(), os.Stdin, out)
	if out != os.Stdout {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Error("%v", err)
		exit(ctx, 1)
	}

	if !*quiet {
		reportSummary(os.Stderr, sum, ctx.detector != nil)
	}
	code := 0
	if sum.Failed > 0 {
		code = 1
	}
	exit(ctx, code)
}

// exit closes the archive and exits with code.
func exit(ctx *ProcessingContext, code int) {
	if ctx.archive != nil {
		ctx.archive.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
	os.Exit(code)
}

// loadConfig loads the environment settings and applies the flags on top.
func loadConfig() *config.Config {
	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// setupLogger builds the logger, writing to the -l file when given.
func setupLogger(cfg *config.Config) *logger.Logger {
	if *logFile == "" {
		return cfg.Logger()
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	return cfg.Logger(logger.WithOutput(file), logger.WithColors(false))
}

// setupOutputFile opens the -o file, or returns stdout.
func setupOutputFile() *os.File {
	if *outputFile == "" {
		return os.Stdout
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file
}

// runArchiveQuery handles -list and -show and returns the exit code.
func runArchiveQuery(a *archive.Archive) int {
	var w io.Writer = os.Stdout
	var err error
	if *showGame != "" {
		err = showArchived(a, *showGame, w)
	} else {
		err = listGames(a, w)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessme [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and prints each game in PGN form.\n")
	fmt.Fprintf(os.Stderr, "Scripts are read from stdin when no files are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  # comment\n")
	fmt.Fprintf(os.Stderr, "  [White \"Alice\"]          tag, also Black, Event, Site, Date, Round, Placement\n")
	fmt.Fprintf(os.Stderr, "  e2 e4   e7-e5   g1f3     moves, alternating White and Black\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  CHESSME_* variables and a .env file set the defaults the flags override.\n")
}
