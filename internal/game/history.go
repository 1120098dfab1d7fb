package game

import (
	"strconv"

	"github.com/lgbarn/chessme-go/internal/chess"
)

// History is the append-only list of recorded move tokens.
type History struct {
	tokens []string
}

// Record appends the token for piece arriving on dest and returns it.
//
// The token is the piece letter (none for pawns, lowercase for Black), then
// 'a'+dest.Row, then dest.Col as a decimal, then " " after a White move or
// "\n" after a Black move. Row and column are crossed over and the column
// stays 0-based, matching games recorded earlier.
func (h *History) Record(piece chess.Piece, dest chess.Square, mover chess.Player) string {
	token := recordToken(piece, dest, mover)
	h.tokens = append(h.tokens, token)
	return token
}

func recordToken(piece chess.Piece, dest chess.Square, mover chess.Player) string {
	buf := make([]byte, 0, 6)
	if piece.Role != chess.Pawn {
		buf = append(buf, piece.Letter())
	}
	buf = append(buf, byte(chess.FileBase+dest.Row))
	buf = strconv.AppendInt(buf, int64(dest.Col), 10)
	if mover == chess.White {
		buf = append(buf, ' ')
	} else {
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Tokens returns a copy of the recorded tokens in insertion order.
func (h *History) Tokens() []string {
	out := make([]string, len(h.tokens))
	copy(out, h.tokens)
	return out
}

// Len returns the number of recorded tokens.
func (h *History) Len() int {
	return len(h.tokens)
}
