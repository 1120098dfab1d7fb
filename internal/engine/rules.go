// Package engine provides chess move validation, check detection and
// position notation.
package engine

import "github.com/lgbarn/chessme-go/internal/chess"

// IsLegal reports whether mover may move the piece on from to to.
//
// Ownership and capture rules are applied here once; the per-role rules only
// look at geometry and obstruction. The board is never modified. A move that
// leaves the mover's own king attacked is still reported as legal.
func IsLegal(board *chess.Board, from, to chess.Square, mover chess.Player) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}

	piece, ok := board.Occupant(from)
	if !ok {
		return false
	}

	// Only your own pieces move
	if piece.IsOpponentOf(mover) {
		return false
	}

	if from == to {
		return false
	}

	// No self-capture
	if target, ok := board.Occupant(to); ok && !target.IsOpponentOf(mover) {
		return false
	}

	return canPieceMove(board, piece, from, to)
}

// canPieceMove dispatches to the shape rule for the piece's role.
func canPieceMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	switch piece.Role {
	case chess.King:
		return isKingMove(from, to)
	case chess.Queen:
		return isQueenMove(board, from, to)
	case chess.Rook:
		return isRookMove(board, from, to)
	case chess.Bishop:
		return isBishopMove(board, from, to)
	case chess.Knight:
		return isKnightMove(from, to)
	case chess.Pawn:
		return isPawnMove(board, from, to, piece.Owner)
	}
	return false
}

// LegalDestinations returns every square the piece on from may move to,
// in row-major order.
func LegalDestinations(board *chess.Board, from chess.Square, mover chess.Player) []chess.Square {
	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsLegal(board, from, to, mover) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}
