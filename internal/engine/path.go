package engine

import "github.com/lgbarn/chessme-go/internal/chess"

// isKingMove checks for a step onto any of the eight adjacent squares.
func isKingMove(from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return rowDiff <= 1 && colDiff <= 1
}

// isKnightMove checks for a (1,2) or (2,1) jump.
func isKnightMove(from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}

// isQueenMove is the union of the rook and bishop rules.
func isQueenMove(board *chess.Board, from, to chess.Square) bool {
	return isRookMove(board, from, to) || isBishopMove(board, from, to)
}

// isRookMove checks for a straight line with nothing in between.
func isRookMove(board *chess.Board, from, to chess.Square) bool {
	if (from.Row == to.Row) == (from.Col == to.Col) {
		return false
	}
	return isStraightClear(board, from, to)
}

// isBishopMove checks for a non-zero diagonal with nothing in between.
func isBishopMove(board *chess.Board, from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	if rowDiff != colDiff || rowDiff == 0 {
		return false
	}
	return isDiagonalClear(board, from, to)
}

// isDiagonalClear checks if the diagonal path is clear.
// The walk stops on reaching the destination row or column and never
// leaves the board.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := chess.Sq(from.Row+rowDir, from.Col+colDir)
	for sq.Row != to.Row && sq.Col != to.Col && sq.OnBoard() {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = chess.Sq(sq.Row+rowDir, sq.Col+colDir)
	}

	return true
}

// isStraightClear checks if the straight path is clear.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := chess.Sq(from.Row+rowDir, from.Col+colDir)
	for sq != to && sq.OnBoard() {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = chess.Sq(sq.Row+rowDir, sq.Col+colDir)
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
