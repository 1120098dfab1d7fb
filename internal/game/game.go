// Package game ties a board and its move history together into one game.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/errors"
	"github.com/lgbarn/chessme-go/internal/logger"
	"github.com/lgbarn/chessme-go/internal/output"
)

// Game is a single game: the board, the recorded moves and the settings used
// to classify and print it. A Game is not safe for concurrent use.
type Game struct {
	id         uuid.UUID
	board      chess.Board
	history    History
	placements []string
	filter     engine.MoveFilter
	header     output.Header
	log        *logger.Logger
}

// New creates a game in the standard opening position with no moves.
func New(opts ...Option) *Game {
	g := &Game{
		board:  chess.NewBoard(),
		filter: engine.KingSafe,
		header: output.DefaultHeader(),
		log:    logger.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == uuid.Nil {
		g.id = uuid.New()
	}
	g.log = g.log.WithField("game", g.id)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// AttemptMove checks the move against a copy of the board. When it is legal
// the move is recorded in the history and true is returned. The board itself
// is left alone; call MovePiece to apply the move.
func (g *Game) AttemptMove(from, to chess.Square, mover chess.Player) bool {
	snapshot := g.board
	moveLog := g.log.WithField("move", from.String()+"-"+to.String())

	if !engine.IsLegal(&snapshot, from, to, mover) {
		moveLog.Debug("move rejected for %v", mover)
		return false
	}

	piece, _ := snapshot.Occupant(from)
	moveLog.WithField("placement", engine.EncodePlacement(&g.board, mover)).Debug("move accepted")
	g.history.Record(piece, to, mover)
	return true
}

// MovePiece relocates the piece on from to to without any rule check.
func (g *Game) MovePiece(from, to chess.Square) error {
	return g.board.MovePiece(from, to)
}

// Play records and applies a legal move. An illegal move returns a
// *errors.MoveError wrapping errors.ErrIllegalMove and changes nothing.
func (g *Game) Play(from, to chess.Square, mover chess.Player) error {
	ply := g.history.Len() + 1
	if !g.AttemptMove(from, to, mover) {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Ply:    ply,
			From:   from.String(),
			To:     to.String(),
			Player: mover.String(),
		}
	}
	if err := g.board.MovePiece(from, to); err != nil {
		return &errors.MoveError{Err: err, Ply: ply, From: from.String(), To: to.String(), Player: mover.String()}
	}
	g.placements = append(g.placements, engine.EncodePlacement(&g.board, mover.Opponent()))
	return nil
}

// Result classifies the position with mover as the side to move.
func (g *Game) Result(mover chess.Player) engine.Result {
	return engine.Classify(&g.board, mover, g.filter)
}

// Placement returns the placement string of the current board.
func (g *Game) Placement(side chess.Player) string {
	return engine.EncodePlacement(&g.board, side)
}

// Placements returns the placement string after each move applied by Play.
func (g *Game) Placements() []string {
	out := make([]string, len(g.placements))
	copy(out, g.placements)
	return out
}

// PGN renders the game with the configured header.
func (g *Game) PGN(white, black, result string) string {
	return output.FormatGame(g.header, g.history.Tokens(), white, black, result)
}

// Output returns the game in the form the output writers accept.
func (g *Game) Output(white, black string, result engine.Result) *output.Game {
	return &output.Game{
		ID:         g.id.String(),
		Header:     g.header,
		White:      white,
		Black:      black,
		Result:     result.String(),
		Moves:      g.history.Tokens(),
		Placements: g.Placements(),
	}
}

// History returns a copy of the recorded move tokens.
func (g *Game) History() []string {
	return g.history.Tokens()
}

// Header returns the tag values used by PGN.
func (g *Game) Header() output.Header {
	return g.header
}

// Board returns a copy of the board.
func (g *Game) Board() chess.Board {
	return g.board
}

// Occupant returns the piece on sq.
func (g *Game) Occupant(sq chess.Square) (chess.Piece, bool) {
	return g.board.Occupant(sq)
}
