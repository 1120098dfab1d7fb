// Package processing replays move scripts into games and validates them.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/game"
	"github.com/lgbarn/chessme-go/internal/logger"
	"github.com/lgbarn/chessme-go/internal/output"
	"github.com/lgbarn/chessme-go/internal/script"
)

// Options controls how scripts are replayed.
type Options struct {
	Filter       engine.MoveFilter
	Header       output.Header
	White        string // used when the script has no White tag
	Black        string // used when the script has no Black tag
	StopAtResult bool
	Logger       *logger.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Filter:       engine.KingSafe,
		Header:       output.DefaultHeader(),
		White:        "White",
		Black:        "Black",
		StopAtResult: true,
		Logger:       logger.Default(),
	}
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int // 1-based ply of the first rejected move, 0 when valid
	ErrorMsg string
	Err      error
	Ignored  int // moves left unplayed after the game ended
}

// Replay is a replayed script.
type Replay struct {
	Name       string
	Game       *game.Game
	White      string
	Black      string
	Side       chess.Player // side to move in the final position
	Result     engine.Result
	Plies      int
	Validation ValidationResult
}

// Output returns the replay in the form the output writers accept.
func (r *Replay) Output() *output.Game {
	return r.Game.Output(r.White, r.Black, r.Result)
}

// ReplayScript plays the script's moves alternately from its start position.
// Replay stops at the first illegal move, and with StopAtResult also at the
// first decisive or drawn position.
func ReplayScript(s *script.Script, opts Options) *Replay {
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	header := opts.Header
	header.Event = s.Tag("Event", header.Event)
	header.Site = s.Tag("Site", header.Site)
	header.Date = s.Tag("Date", header.Date)
	header.Round = s.Tag("Round", header.Round)

	r := &Replay{
		Name:       s.Name,
		White:      s.Tag("White", opts.White),
		Black:      s.Tag("Black", opts.Black),
		Validation: ValidationResult{Valid: true},
	}

	board, side, err := s.Start()
	if err != nil {
		r.Game = game.New(game.WithLogger(opts.Logger), game.WithHeader(header), game.WithMoveFilter(opts.Filter))
		r.Side = chess.White
		r.Result = engine.Ongoing
		r.invalidate(0, err)
		return r
	}

	g := game.New(
		game.WithLogger(opts.Logger.WithField("script", s.Name)),
		game.WithHeader(header),
		game.WithMoveFilter(opts.Filter),
		game.WithBoard(board),
	)
	r.Game = g

	for i, m := range s.Moves {
		if opts.StopAtResult && g.Result(side).IsTerminal() {
			r.Validation.Ignored = len(s.Moves) - i
			opts.Logger.Warn("%s: %d moves after the end of the game ignored", s.Name, r.Validation.Ignored)
			break
		}
		if err := g.Play(m.From, m.To, side); err != nil {
			r.invalidate(r.Plies+1, fmt.Errorf("%s:%d: %w", s.Name, m.Line, err))
			break
		}
		r.Plies++
		side = side.Opponent()
	}

	r.Side = side
	r.Result = g.Result(side)
	return r
}

func (r *Replay) invalidate(ply int, err error) {
	r.Validation.Valid = false
	r.Validation.ErrorPly = ply
	r.Validation.ErrorMsg = err.Error()
	r.Validation.Err = err
}
