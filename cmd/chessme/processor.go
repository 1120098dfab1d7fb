// processor.go - Script replay and output functions
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessme-go/internal/archive"
	"github.com/lgbarn/chessme-go/internal/config"
	"github.com/lgbarn/chessme-go/internal/hashing"
	"github.com/lgbarn/chessme-go/internal/logger"
	"github.com/lgbarn/chessme-go/internal/output"
	"github.com/lgbarn/chessme-go/internal/processing"
	"github.com/lgbarn/chessme-go/internal/script"
	"github.com/lgbarn/chessme-go/internal/worker"
)

// ProcessingContext holds the state shared by every script of one run.
type ProcessingContext struct {
	cfg      *config.Config
	log      *logger.Logger
	detector *hashing.DuplicateDetector // nil unless duplicates are suppressed
	archive  *archive.Archive                     // nil unless archiving
}

// Summary counts what a run did.
type Summary struct {
	Scripts    int
	Output     int
	Duplicates int
	Failed     int
}

// replayOptions derives the replay settings from the configuration.
func (ctx *ProcessingContext) replayOptions() processing.Options {
	return processing.Options{
		Filter:       ctx.cfg.MoveFilter(),
		Header:       ctx.cfg.Header(),
		White:        ctx.cfg.Output.White,
		Black:        ctx.cfg.Output.Black,
		StopAtResult: ctx.cfg.Filter.StopAtResult,
		Logger:       ctx.log,
	}
}

// readScripts parses every named file, or stdin when names is empty.
// Files that cannot be read or parsed are logged and counted as failed.
func readScripts(names []string, stdin io.Reader, log *logger.Logger) ([]*script.Script, int) {
	if len(names) == 0 {
		s, err := script.Parse(stdin, "stdin")
		if err != nil {
			log.Error("%v", err)
			return nil, 1
		}
		return []*script.Script{s}, 0
	}

	var scripts []*script.Script
	failed := 0
	for _, name := range names {
		s, err := parseFile(name)
		if err != nil {
			log.Error("%v", err)
			failed++
			continue
		}
		scripts = append(scripts, s)
	}
	return scripts, failed
}

func parseFile(name string) (*script.Script, error) {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only

	return script.Parse(file, name)
}

// replayAll replays scripts on the worker pool and returns the results in
// input order. Scripts not started before runCtx is done are dropped.
func (ctx *ProcessingContext) replayAll(runCtx context.Context, scripts []*script.Script) []worker.ProcessResult {
	pool := worker.NewPool(
		worker.ReplayFunc(ctx.replayOptions()),
		worker.WithWorkers(ctx.cfg.Workers),
		worker.WithBufferSize(2*ctx.cfg.Workers),
	)
	results := pool.Run(runCtx, scripts)
	if n := len(scripts) - len(results); n > 0 {
		ctx.log.Warn("interrupted, %d script(s) not replayed", n)
	}
	return results
}

// writeResults writes and archives the valid replays in the order given.
// Failed replays are logged. With a detector, a game whose final position
// matches an earlier game in that order is skipped.
func (ctx *ProcessingContext) writeResults(results []worker.ProcessResult, gw output.GameWriter) (Summary, error) {
	var sum Summary
	for _, res := range results {
		sum.Scripts++
		r := res.Replay

		if res.Error != nil {
			ctx.log.Error("%v", res.Error)
			sum.Failed++
			continue
		}
		if ctx.isDuplicate(r) {
			ctx.log.Info("%s: duplicate of an earlier game, skipped", r.Name)
			sum.Duplicates++
			continue
		}

		if err := gw.WriteGame(r.Output()); err != nil {
			return sum, err
		}
		sum.Output++

		if ctx.archive != nil {
			rec := archive.NewRecord(r.Game, r.White, r.Black, r.Side)
			if err := ctx.archive.Save(rec); err != nil {
				return sum, fmt.Errorf("archiving %s: %w", r.Name, err)
			}
			ctx.log.Debug("%s archived as %s", r.Name, rec.ID)
		}
	}
	return sum, gw.Flush()
}

func (ctx *ProcessingContext) isDuplicate(r *processing.Replay) bool {
	if ctx.detector == nil {
		return false
	}
	board := r.Game.Board()
	return ctx.detector.CheckAndAdd(&board, r.Side, r.Plies)
}

// processAllInputs reads, replays and writes every input.
func processAllInputs(runCtx context.Context, ctx *ProcessingContext, names []string, stdin io.Reader, w io.Writer) (Summary, error) {
	scripts, failed := readScripts(names, stdin, ctx.log)

	gw, err := output.NewGameWriter(w, ctx.cfg.Output.Format)
	if err != nil {
		return Summary{}, err
	}
	if pw, ok := gw.(*output.PGNWriter); ok {
		pw.ShowPlacements(ctx.cfg.Output.PrintPlacements)
	}

	sum, err := ctx.writeResults(ctx.replayAll(runCtx, scripts), gw)
	sum.Scripts += failed
	sum.Failed += failed
	if err != nil {
		return sum, err
	}
	return sum, gw.Close()
}

// listGames prints one line per archived game followed by the result counts.
func listGames(a *archive.Archive, w io.Writer) error {
	records, err := a.List()
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s  %-8s %s - %s  %d moves  %s\n", //nolint:errcheck
			rec.ID, rec.Result, rec.White, rec.Black, len(rec.Moves), rec.SavedAt.Format("2006-01-02 15:04"))
	}

	stats, err := a.Stats()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d game(s): %d white win(s), %d black win(s), %d draw(s), %d unfinished\n",
		stats.Games, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.Unfinished)
	return err
}

// showArchived prints the PGN of one archived game.
func showArchived(a *archive.Archive, id string, w io.Writer) error {
	rec, err := a.Load(id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", rec.PGN)
	return err
}

// reportSummary prints the final counts to w.
func reportSummary(w io.Writer, sum Summary, duplicates bool) {
	if duplicates {
		fmt.Fprintf(w, "%d game(s) output, %d duplicate(s), %d failed out of %d.\n", //nolint:errcheck
			sum.Output, sum.Duplicates, sum.Failed, sum.Scripts)
		return
	}
	fmt.Fprintf(w, "%d game(s) output, %d failed out of %d.\n", sum.Output, sum.Failed, sum.Scripts) //nolint:errcheck
}
