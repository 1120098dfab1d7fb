package engine

import "github.com/lgbarn/chessme-go/internal/chess"

// KingSquare returns the first king of the given player in row-major order.
func KingSquare(board *chess.Board, player chess.Player) (chess.Square, bool) {
	king := chess.Piece{Role: chess.King, Owner: player}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// InCheck returns true if the given player's king is attacked.
// A player without a king is never in check.
func InCheck(board *chess.Board, player chess.Player) bool {
	king, ok := KingSquare(board, player)
	if !ok {
		return false
	}
	return isSquareAttacked(board, king, player.Opponent())
}

// isSquareAttacked reports whether any piece of byPlayer could legally move to sq.
// Pieces of the other side are filtered out by IsLegal's ownership rule.
func isSquareAttacked(board *chess.Board, sq chess.Square, byPlayer chess.Player) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			if board.IsEmpty(from) {
				continue
			}
			if IsLegal(board, from, sq, byPlayer) {
				return true
			}
		}
	}
	return false
}
