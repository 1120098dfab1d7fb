package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessme-go/internal/archive"
	"github.com/lgbarn/chessme-go/internal/config"
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/hashing"
	"github.com/lgbarn/chessme-go/internal/logger"
	"github.com/lgbarn/chessme-go/internal/output"
	"github.com/lgbarn/chessme-go/internal/script"
	"github.com/lgbarn/chessme-go/internal/worker"
)

const (
	foolsMate  = "[White \"Alice\"]\n[Black \"Bob\"]\nf2 f3\ne7 e5\ng2 g4\nd8 h4\n"
	foolsMate2 = "g2-g4 e7-e5\nf2-f3 d8-h4\n"
	queenMate  = "e2e4 e7e5\nd1h5 e8e7\nh5e5\n"
	illegal    = "e2 e4\ne7 e4\n"
)

func newTestContext(t *testing.T) *ProcessingContext {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Workers = 2
	return &ProcessingContext{cfg: cfg, log: logger.Discard()}
}

// writeScripts writes each source to its own file and returns the paths.
func writeScripts(t *testing.T, sources ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(sources))
	for i, src := range sources {
		paths[i] = filepath.Join(dir, "game"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(paths[i], []byte(src), 0644))
	}
	return paths
}

func TestProcessAllInputs(t *testing.T) {
	ctx := newTestContext(t)
	var out bytes.Buffer

	sum, err := processAllInputs(context.Background(), ctx, writeScripts(t, foolsMate, queenMate), nil, &out)
	require.NoError(t, err)
	assert.Equal(t, Summary{Scripts: 2, Output: 2}, sum)

	text := out.String()
	assert.Contains(t, text, "[White \"Alice\"]\n[Black \"Bob\"]\n[Result \"0-1\"]\n\n1. c5  2. e4\n 3. d6  4. qd7\n ")
	assert.Contains(t, text, "[Result \"1-0\"]")
	assert.Less(t, strings.Index(text, "0-1"), strings.Index(text, "1-0"), "games must keep input order")
}

func TestProcessAllInputs_Stdin(t *testing.T) {
	ctx := newTestContext(t)
	var out bytes.Buffer

	sum, err := processAllInputs(context.Background(), ctx, nil, strings.NewReader(queenMate), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Output)
	assert.Contains(t, out.String(), "[White \"White\"]")
	assert.Contains(t, out.String(), "[Result \"1-0\"]")
}

func TestProcessAllInputs_Failures(t *testing.T) {
	ctx := newTestContext(t)
	paths := writeScripts(t, illegal, queenMate, "e2 e9\n")
	paths = append(paths, filepath.Join(t.TempDir(), "missing.txt"))
	var out bytes.Buffer

	sum, err := processAllInputs(context.Background(), ctx, paths, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, Summary{Scripts: 4, Output: 1, Failed: 3}, sum)
	assert.Equal(t, 1, strings.Count(out.String(), "[Event "))
}

func TestProcessAllInputs_Duplicates(t *testing.T) {
	ctx := newTestContext(t)
	ctx.detector = hashing.NewDuplicateDetector(false, 0)
	var out bytes.Buffer

	sum, err := processAllInputs(context.Background(), ctx, writeScripts(t, foolsMate, foolsMate2, queenMate), nil, &out)
	require.NoError(t, err)
	assert.Equal(t, Summary{Scripts: 3, Output: 2, Duplicates: 1}, sum)
	assert.Equal(t, 1, strings.Count(out.String(), "[Result \"0-1\"]"))
	assert.Contains(t, out.String(), "[White \"Alice\"]", "the first game in input order is kept")
}

func TestWriteResults_DuplicateKeepsEarlierInput(t *testing.T) {
	ctx := newTestContext(t)
	ctx.detector = hashing.NewDuplicateDetector(false, 0)

	first, err := script.Parse(strings.NewReader("[White \"First\"]\n"+foolsMate2), "first")
	require.NoError(t, err)
	second, err := script.Parse(strings.NewReader("[White \"Second\"]\nf2 f3 e7 e5\ng2 g4 d8 h4\n"), "second")
	require.NoError(t, err)

	// The first script only finishes after the second one.
	secondDone := make(chan struct{})
	replay := worker.ReplayFunc(ctx.replayOptions())
	fn := func(item worker.WorkItem) worker.ProcessResult {
		if item.Index == 0 {
			<-secondDone
		} else {
			defer close(secondDone)
		}
		return replay(item)
	}
	results := worker.NewPool(fn, worker.WithWorkers(2)).Run(context.Background(), []*script.Script{first, second})
	require.Len(t, results, 2)

	var out bytes.Buffer
	gw, err := output.NewGameWriter(&out, "pgn")
	require.NoError(t, err)
	sum, err := ctx.writeResults(results, gw)
	require.NoError(t, err)

	assert.Equal(t, Summary{Scripts: 2, Output: 1, Duplicates: 1}, sum)
	assert.Contains(t, out.String(), "[White \"First\"]")
	assert.NotContains(t, out.String(), "[White \"Second\"]")
}

func TestProcessAllInputs_JSON(t *testing.T) {
	ctx := newTestContext(t)
	ctx.cfg.Output.Format = "json"
	ctx.cfg.Output.PrintPlacements = true
	var out bytes.Buffer

	_, err := processAllInputs(context.Background(), ctx, writeScripts(t, foolsMate), nil, &out)
	require.NoError(t, err)

	var doc output.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Games, 1)
	assert.Equal(t, "0-1", doc.Games[0].Result)
	assert.Equal(t, 4, doc.Games[0].PlyCount)
	assert.Equal(t, "Alice", doc.Games[0].Tags["White"])
	assert.Len(t, doc.Games[0].Placements, 4)
}

func TestProcessAllInputs_Placements(t *testing.T) {
	ctx := newTestContext(t)
	ctx.cfg.Output.PrintPlacements = true
	var out bytes.Buffer

	_, err := processAllInputs(context.Background(), ctx, writeScripts(t, foolsMate), nil, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "; 1 rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR b\n")
	assert.Contains(t, out.String(), "; 4 rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w\n")
}

func TestProcessAllInputs_StopAtResult(t *testing.T) {
	paths := writeScripts(t, foolsMate+"e2 e4\n")

	ctx := newTestContext(t)
	var out bytes.Buffer
	sum, err := processAllInputs(context.Background(), ctx, paths, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Output)
	assert.NotContains(t, out.String(), "5. ")

	ctx.cfg.Filter.StopAtResult = false
	out.Reset()
	_, err = processAllInputs(context.Background(), ctx, paths, nil, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "5. d4 ")
}

func TestArchiveQueries(t *testing.T) {
	a, err := archive.Open("")
	require.NoError(t, err)
	defer a.Close()

	ctx := newTestContext(t)
	ctx.archive = a
	var out bytes.Buffer
	_, err = processAllInputs(context.Background(), ctx, writeScripts(t, foolsMate, queenMate), nil, &out)
	require.NoError(t, err)

	var list bytes.Buffer
	require.NoError(t, listGames(a, &list))
	assert.Contains(t, list.String(), "Alice - Bob")
	assert.Contains(t, list.String(), "2 game(s): 1 white win(s), 1 black win(s), 0 draw(s), 0 unfinished\n")

	records, err := a.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	var shown bytes.Buffer
	require.NoError(t, showArchived(a, records[0].ID, &shown))
	assert.Equal(t, records[0].PGN+"\n", shown.String())

	assert.Error(t, showArchived(a, "no-such-game", &shown))
}

func TestApplyFlags(t *testing.T) {
	set := func(name, value string) {
		t.Helper()
		old := flag.Lookup(name).Value.String()
		require.NoError(t, flag.Set(name, value))
		t.Cleanup(func() { flag.Set(name, old) }) //nolint:errcheck
	}

	cfg := config.NewConfig()
	require.NoError(t, applyFlags(cfg))
	assert.Equal(t, config.NewConfig(), cfg, "no flags must leave the defaults alone")

	set("filter", "structural")
	set("workers", "4")
	set("J", "true")
	set("white", "Carol")
	set("keep-going", "true")
	set("log", "debug")

	cfg = config.NewConfig()
	require.NoError(t, applyFlags(cfg))
	assert.Equal(t, engine.Structural, cfg.MoveFilter())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "Carol", cfg.Output.White)
	assert.Equal(t, "Black", cfg.Output.Black)
	assert.False(t, cfg.Filter.StopAtResult)
	assert.Equal(t, logger.DEBUG, cfg.LogLevel)

	set("filter", "legal")
	assert.Error(t, applyFlags(config.NewConfig()))
}

func TestReportSummary(t *testing.T) {
	var buf bytes.Buffer
	reportSummary(&buf, Summary{Scripts: 3, Output: 2, Failed: 1}, false)
	assert.Equal(t, "2 game(s) output, 1 failed out of 3.\n", buf.String())

	buf.Reset()
	reportSummary(&buf, Summary{Scripts: 3, Output: 1, Duplicates: 1, Failed: 1}, true)
	assert.Equal(t, "1 game(s) output, 1 duplicate(s), 1 failed out of 3.\n", buf.String())
}
