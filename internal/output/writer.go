package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Game is a finished game ready to be written.
type Game struct {
	ID         string
	Header     Header
	White      string
	Black      string
	Result     string
	Moves      []string
	Placements []string // placement after each accepted move, optional
}

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for format ("pgn" or "json").
func NewGameWriter(w io.Writer, format string) (GameWriter, error) {
	switch format {
	case "", "pgn":
		return NewPGNWriter(w), nil
	case "json":
		return NewJSONWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// PGNWriter writes games in the PGN-like text format, one blank line apart.
// It is safe for concurrent use.
type PGNWriter struct {
	mu             sync.Mutex
	w              io.Writer
	showPlacements bool
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer) *PGNWriter {
	return &PGNWriter{w: w}
}

// ShowPlacements makes the writer list every placement string after the moves.
func (pw *PGNWriter) ShowPlacements(show bool) {
	pw.showPlacements = show
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(game *Game) error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if err := WriteGame(pw.w, game.Header, game.Moves, game.White, game.Black, game.Result); err != nil {
		return err
	}
	if _, err := fmt.Fprint(pw.w, "\n\n"); err != nil {
		return err
	}
	if !pw.showPlacements {
		return nil
	}
	for i, placement := range game.Placements {
		if _, err := fmt.Fprintf(pw.w, "; %d %s\n", i+1, placement); err != nil {
			return err
		}
	}
	if len(game.Placements) > 0 {
		_, err := fmt.Fprintln(pw.w)
		return err
	}
	return nil
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONGame is the JSON form of a game.
type JSONGame struct {
	ID         string            `json:"id,omitempty"`
	Tags       map[string]string `json:"tags"`
	Moves      []string          `json:"moves"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	Placements []string          `json:"placements,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON form.
func GameToJSON(game *Game) *JSONGame {
	moves := make([]string, len(game.Moves))
	copy(moves, game.Moves)

	return &JSONGame{
		ID: game.ID,
		Tags: map[string]string{
			"Event":  game.Header.Event,
			"Site":   game.Header.Site,
			"Date":   game.Header.Date,
			"Round":  game.Header.Round,
			"White":  game.White,
			"Black":  game.Black,
			"Result": game.Result,
		},
		Moves:      moves,
		Result:     game.Result,
		PlyCount:   len(game.Moves),
		Placements: game.Placements,
	}
}

// JSONWriter buffers games and writes them as a JSON array on Flush or Close.
// It is safe for concurrent use.
type JSONWriter struct {
	mu    sync.Mutex
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(game *Game) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()
	jw.games = append(jw.games, GameToJSON(game))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
