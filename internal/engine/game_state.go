package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/errors"
)

// Result is a game result tag.
type Result string

const (
	WhiteWins Result = "1-0"
	BlackWins Result = "0-1"
	Draw      Result = "1/2-1/2"
	Ongoing   Result = "*"
)

// String returns the result tag.
func (r Result) String() string {
	return string(r)
}

// IsTerminal reports whether the game has ended.
func (r Result) IsTerminal() bool {
	return r != Ongoing
}

// WinFor returns the result in which player wins.
func WinFor(player chess.Player) Result {
	if player == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// MoveFilter selects what counts as "having a move" when classifying a position.
type MoveFilter int

const (
	// KingSafe only counts moves that do not leave the mover's king attacked.
	KingSafe MoveFilter = iota
	// Structural counts every move IsLegal accepts.
	Structural
)

// String returns the configuration name of the filter.
func (f MoveFilter) String() string {
	if f == Structural {
		return "structural"
	}
	return "kingsafe"
}

// ParseMoveFilter converts a configuration name into a MoveFilter.
func ParseMoveFilter(text string) (MoveFilter, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "kingsafe", "king-safe", "strict":
		return KingSafe, nil
	case "structural", "loose":
		return Structural, nil
	}
	return KingSafe, fmt.Errorf("move filter %q: %w", text, errors.ErrInvalidConfig)
}

// hasMoves applies the filter's notion of an available move.
func (f MoveFilter) hasMoves(board *chess.Board, player chess.Player) bool {
	if f == Structural {
		return HasAnyLegalMove(board, player)
	}
	return HasSafeMove(board, player)
}

// IsCheckmate returns true if player is in check and has no move.
func IsCheckmate(board *chess.Board, player chess.Player, filter MoveFilter) bool {
	return InCheck(board, player) && !filter.hasMoves(board, player)
}

// Classify decides the result with mover as the side to move. Checks are
// evaluated in this order: mover mated, opponent mated, mover stalemated.
func Classify(board *chess.Board, mover chess.Player, filter MoveFilter) Result {
	opponent := mover.Opponent()

	moverHasMoves := filter.hasMoves(board, mover)
	opponentHasMoves := filter.hasMoves(board, opponent)

	if InCheck(board, mover) && !moverHasMoves {
		return WinFor(opponent)
	}
	if InCheck(board, opponent) && !opponentHasMoves {
		return WinFor(mover)
	}
	if !moverHasMoves {
		return Draw
	}
	return Ongoing
}

// ClassifyResult is Classify with the KingSafe filter.
func ClassifyResult(board *chess.Board, mover chess.Player) Result {
	return Classify(board, mover, KingSafe)
}
