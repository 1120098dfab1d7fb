package testutil

import (
	"testing"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/engine"
)

// MustSquare parses "e2"-style text and calls t.Fatal on failure.
func MustSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", text, err)
	}
	return sq
}

// MustBoard decodes a placement string and calls t.Fatal on failure.
func MustBoard(t *testing.T, placement string) *chess.Board {
	t.Helper()
	board, _, err := engine.DecodePlacement(placement)
	if err != nil {
		t.Fatalf("DecodePlacement(%q) error: %v", placement, err)
	}
	return &board
}

// Relocate applies "from", "to" square pairs mechanically to board.
// It calls t.Fatal if a source square is empty.
func Relocate(t *testing.T, board *chess.Board, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		from, to := MustSquare(t, p[0]), MustSquare(t, p[1])
		if err := board.MovePiece(from, to); err != nil {
			t.Fatalf("MovePiece(%s, %s) error: %v", p[0], p[1], err)
		}
	}
}
