package chess

import (
	"fmt"

	"github.com/lgbarn/chessme-go/internal/errors"
)

// Square is a board coordinate. Row 0 is White's home rank, Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether both coordinates are in [0, BoardSize).
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the square in file/rank form, e.g. "e2".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(FileBase + s.Col), byte(RankBase + s.Row)})
}

// ParseSquare converts "<file><rank>" text such as "e2" into a Square.
// Out-of-range characters are rejected, never clamped.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file, rank := text[0], text[1]
	if file < FileBase || file >= FileBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{Row: int(rank - RankBase), Col: int(file - FileBase)}, nil
}
