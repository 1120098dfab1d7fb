package engine

import "github.com/lgbarn/chessme-go/internal/chess"

// isPawnMove checks single and double advances and diagonal captures for a
// pawn owned by owner. There is no en passant and no promotion.
func isPawnMove(board *chess.Board, from, to chess.Square, owner chess.Player) bool {
	dir := owner.Direction()
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	if colDiff == 0 {
		// Single step
		if rowDiff == dir && board.IsEmpty(to) {
			return true
		}
		// Double step from the home row
		if from.Row == owner.HomeRow() && rowDiff == 2*dir && board.IsEmpty(to) {
			return board.IsEmpty(chess.Sq(from.Row+dir, from.Col))
		}
		return false
	}

	// Captures
	if rowDiff == dir && abs(colDiff) == 1 {
		if target, ok := board.Occupant(to); ok {
			return target.IsOpponentOf(owner)
		}
	}

	return false
}
