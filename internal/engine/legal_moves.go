package engine

import "github.com/lgbarn/chessme-go/internal/chess"

// HasAnyLegalMove returns true if the given player has at least one move that
// IsLegal accepts. King safety is not considered.
func HasAnyLegalMove(board *chess.Board, player chess.Player) bool {
	return hasMove(board, player, func(from, to chess.Square) bool {
		return true
	})
}

// HasSafeMove returns true if the given player has at least one legal move
// after which their own king is not in check.
func HasSafeMove(board *chess.Board, player chess.Player) bool {
	return hasMove(board, player, func(from, to chess.Square) bool {
		return tryMove(board, from, to, player)
	})
}

// hasMove enumerates every owned piece against all 64 destinations and
// reports the first candidate that is legal and passes accept.
func hasMove(board *chess.Board, player chess.Player, accept func(from, to chess.Square) bool) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece, ok := board.Occupant(from)
			if !ok || piece.Owner != player {
				continue
			}
			for toRow := 0; toRow < chess.BoardSize; toRow++ {
				for toCol := 0; toCol < chess.BoardSize; toCol++ {
					to := chess.Sq(toRow, toCol)
					if IsLegal(board, from, to, player) && accept(from, to) {
						return true
					}
				}
			}
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Square, player chess.Player) bool {
	testBoard := *board
	if err := testBoard.MovePiece(from, to); err != nil {
		return false
	}
	return !InCheck(&testBoard, player)
}
