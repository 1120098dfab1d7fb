package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/logger"
	"github.com/lgbarn/chessme-go/internal/output"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger; accepted and rejected moves are logged at DEBUG.
func WithLogger(l *logger.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithMoveFilter sets the filter Result uses to decide whether a side can move.
func WithMoveFilter(f engine.MoveFilter) Option {
	return func(g *Game) {
		g.filter = f
	}
}

// WithHeader sets the tag values used by PGN.
func WithHeader(h output.Header) Option {
	return func(g *Game) {
		g.header = h
	}
}

// WithBoard starts the game from board instead of the opening layout.
func WithBoard(board chess.Board) Option {
	return func(g *Game) {
		g.board = board
	}
}

// WithID sets the game identifier instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}
