// Package chess provides core chess types and operations.
package chess

// Player represents the owner of a piece and the side to move.
type Player int

const (
	White Player = iota
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (p Player) Direction() int {
	if p == White {
		return 1
	}
	return -1
}

// HomeRow returns the row a player's pawns start on.
func (p Player) HomeRow() int {
	if p == White {
		return 1
	}
	return BoardSize - 2
}

// Symbol returns the side-to-move letter used in placement strings.
func (p Player) Symbol() byte {
	if p == White {
		return 'w'
	}
	return 'b'
}

// Role represents a chess piece type.
type Role int

const (
	None Role = iota // Empty square
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a role.
func (r Role) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(r) >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a role (uppercase).
func (r Role) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if int(r) >= 0 && int(r) < len(letters) {
		return letters[r]
	}
	return '?'
}

// Piece is a role together with its owner. The zero Piece is no piece.
type Piece struct {
	Role  Role
	Owner Player
}

// W creates a white piece.
func W(role Role) Piece {
	return Piece{Role: role, Owner: White}
}

// B creates a black piece.
func B(role Role) Piece {
	return Piece{Role: role, Owner: Black}
}

// IsEmpty reports whether p is the zero piece.
func (p Piece) IsEmpty() bool {
	return p.Role == None
}

// IsOpponentOf reports whether the piece belongs to the other side.
func (p Piece) IsOpponentOf(player Player) bool {
	return p.Owner != player
}

// Letter returns the placement letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Role.Letter()
	if p.Owner == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "None"
	}
	return p.Owner.String() + " " + p.Role.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)
