package chess

import (
	"fmt"

	"github.com/lgbarn/chessme-go/internal/errors"
)

// Board is the 8x8 grid of pieces, indexed Squares[row][col].
// Board is a value type: assigning it copies the whole position.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the opening order of pieces on rows 0 and 7.
var backRank = [BoardSize]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a board with the standard chess starting position.
func NewBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = W(backRank[col])
		b.Squares[1][col] = W(Pawn)
		b.Squares[6][col] = B(Pawn)
		b.Squares[7][col] = B(backRank[col])
	}
	return b
}

// EmptyBoard creates a board with no pieces.
func EmptyBoard() Board {
	return Board{}
}

// Occupant returns the piece on sq and whether the square is occupied.
// Off-board squares report as empty.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	p := b.Squares[sq.Row][sq.Col]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.Occupant(sq)
	return !ok
}

// Place puts piece on sq, replacing any occupant.
func (b *Board) Place(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Place(sq, Piece{})
}

// MovePiece moves whatever stands on from to to, overwriting the occupant of to.
// No legality check is made.
func (b *Board) MovePiece(from, to Square) error {
	piece, ok := b.Occupant(from)
	if !ok {
		return fmt.Errorf("%s: %w", from, errors.ErrEmptySource)
	}
	if !to.OnBoard() {
		return fmt.Errorf("destination %s: %w", to, errors.ErrInvalidSquare)
	}
	b.Clear(from)
	b.Place(to, piece)
	return nil
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Squares[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}
