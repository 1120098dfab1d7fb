package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/errors"
)

// InitialPlacement is the placement string for the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// ConvertFENCharToRole converts a placement character to a role.
func ConvertFENCharToRole(c byte) chess.Role {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.None
	}
}

// EncodePlacement renders the pieces and the side to move, e.g.
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w". Castling, en passant and
// clock fields are not written.
func EncodePlacement(board *chess.Board, sideToMove chess.Player) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(sideToMove.Symbol())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, Black's back
// rank first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.Occupant(chess.Sq(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// DecodePlacement parses text written by EncodePlacement. The side-to-move
// field is optional and defaults to White; further fields are ignored.
func DecodePlacement(text string) (chess.Board, chess.Player, error) {
	parts := strings.Fields(text)
	if len(parts) < 1 {
		return chess.Board{}, chess.White, fmt.Errorf("empty placement string: %w", errors.ErrInvalidPlacement)
	}

	board := chess.EmptyBoard()
	if err := parsePiecePositions(&board, parts[0]); err != nil {
		return chess.Board{}, chess.White, err
	}

	side := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			side = chess.White
		case "b":
			side = chess.Black
		default:
			return chess.Board{}, chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidPlacement)
		}
	}

	return board, side, nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks, want %d: %w", len(ranks), chess.BoardSize, errors.ErrInvalidPlacement)
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidPlacement)
			default:
				role := ConvertFENCharToRole(byte(c))
				if role == chess.None {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidPlacement)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidPlacement)
				}

				owner := chess.White
				if unicode.IsLower(c) {
					owner = chess.Black
				}
				board.Place(chess.Sq(row, col), chess.Piece{Role: role, Owner: owner})
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d covers %d files: %w", row+1, col, errors.ErrInvalidPlacement)
		}
	}
	return nil
}
