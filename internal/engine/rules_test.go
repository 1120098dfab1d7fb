package engine

import (
	"testing"

	"github.com/lgbarn/chessme-go/internal/chess"
)

// mustDecode decodes a placement string or fails the test.
func mustDecode(t *testing.T, placement string) *chess.Board {
	t.Helper()
	board, _, err := DecodePlacement(placement)
	if err != nil {
		t.Fatalf("DecodePlacement(%q) error: %v", placement, err)
	}
	return &board
}

// sq parses "e2"-style text or fails the test.
func sq(t *testing.T, text string) chess.Square {
	t.Helper()
	s, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", text, err)
	}
	return s
}

// TestCanPieceMove tests the shape rules on an otherwise empty board
func TestCanPieceMove(t *testing.T) {
	emptyBoard := mustDecode(t, "8/8/8/8/8/8/8/8 w")

	tests := []struct {
		name  string
		piece chess.Piece
		from  string
		to    string
		want  bool
	}{
		{"knight L-move", chess.W(chess.Knight), "g1", "f3", true},
		{"knight long L", chess.W(chess.Knight), "g1", "h3", true},
		{"knight straight", chess.W(chess.Knight), "g1", "g3", false},
		{"knight diagonal", chess.W(chess.Knight), "g1", "f2", false},
		{"bishop diagonal", chess.W(chess.Bishop), "c1", "h6", true},
		{"bishop back diagonal", chess.W(chess.Bishop), "h6", "c1", true},
		{"bishop straight", chess.W(chess.Bishop), "c1", "c5", false},
		{"bishop uneven", chess.W(chess.Bishop), "c1", "e4", false},
		{"rook file", chess.W(chess.Rook), "a1", "a8", true},
		{"rook rank backwards", chess.W(chess.Rook), "h4", "a4", true},
		{"rook diagonal", chess.W(chess.Rook), "a1", "h8", false},
		{"queen diagonal", chess.W(chess.Queen), "d1", "h5", true},
		{"queen straight", chess.W(chess.Queen), "d1", "d8", true},
		{"queen knight jump", chess.W(chess.Queen), "d1", "e3", false},
		{"king one square", chess.W(chess.King), "e1", "f2", true},
		{"king sideways", chess.W(chess.King), "e1", "d1", true},
		{"king two squares", chess.W(chess.King), "e1", "g1", false},
		{"white pawn step", chess.W(chess.Pawn), "e3", "e4", true},
		{"white pawn backwards", chess.W(chess.Pawn), "e3", "e2", false},
		{"black pawn step", chess.B(chess.Pawn), "e6", "e5", true},
		{"black pawn backwards", chess.B(chess.Pawn), "e6", "e7", false},
		{"pawn double off home row", chess.W(chess.Pawn), "e3", "e5", false},
		{"pawn diagonal onto empty", chess.W(chess.Pawn), "e3", "f4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canPieceMove(emptyBoard, tt.piece, sq(t, tt.from), sq(t, tt.to))
			if got != tt.want {
				t.Errorf("canPieceMove(%v, %s, %s) = %v, want %v", tt.piece, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// TestCanPieceMove_BlockedPath tests that paths are blocked correctly
func TestCanPieceMove_BlockedPath(t *testing.T) {
	board := chess.NewBoard()

	tests := []struct {
		name  string
		piece chess.Piece
		from  string
		to    string
	}{
		{"rook blocked by a2 pawn", chess.W(chess.Rook), "a1", "a4"},
		{"bishop blocked by d2 pawn", chess.W(chess.Bishop), "c1", "h6"},
		{"queen blocked by d2 pawn", chess.W(chess.Queen), "d1", "d5"},
		{"queen blocked by e2 pawn", chess.W(chess.Queen), "d1", "h5"},
		{"black rook blocked by h7 pawn", chess.B(chess.Rook), "h8", "h5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if canPieceMove(&board, tt.piece, sq(t, tt.from), sq(t, tt.to)) {
				t.Errorf("canPieceMove(%v, %s, %s) = true, want false (blocked)", tt.piece, tt.from, tt.to)
			}
		})
	}
}

// TestPathScansStayOnBoard drives the obstruction scans along edges and
// corners; every scan must end on the destination.
func TestPathScansStayOnBoard(t *testing.T) {
	emptyBoard := mustDecode(t, "8/8/8/8/8/8/8/8 w")

	diagonals := [][2]string{
		{"a1", "h8"}, {"h8", "a1"}, {"h1", "a8"}, {"a8", "h1"},
		{"c1", "a3"}, {"a3", "c1"}, {"f8", "h6"}, {"b1", "a2"},
	}
	for _, d := range diagonals {
		if !isDiagonalClear(emptyBoard, sq(t, d[0]), sq(t, d[1])) {
			t.Errorf("isDiagonalClear(empty, %s, %s) = false, want true", d[0], d[1])
		}
	}

	straights := [][2]string{
		{"a1", "a8"}, {"a8", "a1"}, {"a1", "h1"}, {"h8", "a8"}, {"h1", "h8"},
	}
	for _, s := range straights {
		if !isStraightClear(emptyBoard, sq(t, s[0]), sq(t, s[1])) {
			t.Errorf("isStraightClear(empty, %s, %s) = false, want true", s[0], s[1])
		}
	}

	// A blocker on the last intermediate square next to the edge is found.
	board := mustDecode(t, "8/8/8/8/8/8/1p6/8 w")
	if isDiagonalClear(board, sq(t, "c3"), sq(t, "a1")) {
		t.Error("isDiagonalClear(c3, a1) = true with b2 occupied, want false")
	}
}

// TestIsLegal_Ownership tests the ownership and capture rules
func TestIsLegal_Ownership(t *testing.T) {
	board := chess.NewBoard()

	tests := []struct {
		name  string
		from  string
		to    string
		mover chess.Player
		want  bool
	}{
		{"own pawn", "e2", "e4", chess.White, true},
		{"opponent pawn", "e7", "e5", chess.White, false},
		{"empty source", "e4", "e5", chess.White, false},
		{"null move", "e2", "e2", chess.White, false},
		{"self capture rook", "a1", "a2", chess.White, false},
		{"self capture knight", "b1", "d2", chess.White, false},
		{"self capture queen", "d8", "d7", chess.Black, false},
		{"black knight", "g8", "f6", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsLegal(&board, sq(t, tt.from), sq(t, tt.to), tt.mover)
			if got != tt.want {
				t.Errorf("IsLegal(%s, %s, %v) = %v, want %v", tt.from, tt.to, tt.mover, got, tt.want)
			}
		})
	}
}

func TestIsLegal_Captures(t *testing.T) {
	// White rook d4, black pawns d7 and g4, white pawn b4, black pawn e5.
	board := mustDecode(t, "8/3p4/8/4p3/1P1R2p1/8/8/8 w")

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"rook captures up the file", "d4", "d7", true},
		{"rook captures along the rank", "d4", "g4", true},
		{"rook cannot pass the capture", "d4", "h4", false},
		{"rook blocked by own pawn", "d4", "a4", false},
		{"rook onto own pawn", "d4", "b4", false},
		{"pawn steps past the rook file", "b4", "b5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsLegal(board, sq(t, tt.from), sq(t, tt.to), chess.White)
			if got != tt.want {
				t.Errorf("IsLegal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsLegal_Pawns(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		from      string
		to        string
		mover     chess.Player
		want      bool
	}{
		{"white single", "8/8/8/8/8/8/4P3/8 w", "e2", "e3", chess.White, true},
		{"white double", "8/8/8/8/8/8/4P3/8 w", "e2", "e4", chess.White, true},
		{"white triple", "8/8/8/8/8/8/4P3/8 w", "e2", "e5", chess.White, false},
		{"white double blocked midway", "8/8/8/8/8/4n3/4P3/8 w", "e2", "e4", chess.White, false},
		{"white single blocked", "8/8/8/8/8/4n3/4P3/8 w", "e2", "e3", chess.White, false},
		{"white double onto piece", "8/8/8/8/4n3/8/4P3/8 w", "e2", "e4", chess.White, false},
		{"white capture left", "8/8/8/8/8/3n4/4P3/8 w", "e2", "d3", chess.White, true},
		{"white capture own", "8/8/8/8/8/3N4/4P3/8 w", "e2", "d3", chess.White, false},
		{"white capture backwards", "8/8/8/8/8/8/4P3/3n4 w", "e2", "d1", chess.White, false},
		{"black single", "8/4p3/8/8/8/8/8/8 b", "e7", "e6", chess.Black, true},
		{"black double", "8/4p3/8/8/8/8/8/8 b", "e7", "e5", chess.Black, true},
		{"black double off home row", "8/8/4p3/8/8/8/8/8 b", "e6", "e4", chess.Black, false},
		{"black capture right", "8/4p3/5N2/8/8/8/8/8 b", "e7", "f6", chess.Black, true},
		{"edge pawn capture", "8/8/8/8/8/1n6/P7/8 w", "a2", "b3", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustDecode(t, tt.placement)
			got := IsLegal(board, sq(t, tt.from), sq(t, tt.to), tt.mover)
			if got != tt.want {
				t.Errorf("IsLegal(%q, %s, %s) = %v, want %v", tt.placement, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsLegal_OffBoard(t *testing.T) {
	board := chess.NewBoard()
	cases := [][2]chess.Square{
		{chess.Sq(0, 0), chess.Sq(8, 0)},
		{chess.Sq(-1, 0), chess.Sq(0, 0)},
		{chess.Sq(0, 7), chess.Sq(0, 8)},
	}
	for _, c := range cases {
		if IsLegal(&board, c[0], c[1], chess.White) {
			t.Errorf("IsLegal(%v, %v) = true, want false", c[0], c[1])
		}
	}
}

// TestIsLegal_LeavesKingExposed documents that IsLegal does not look at
// king safety: the pinned bishop may still move.
func TestIsLegal_LeavesKingExposed(t *testing.T) {
	board := mustDecode(t, "4r3/8/8/8/8/8/4B3/4K3 w")
	if !IsLegal(board, sq(t, "e2"), sq(t, "d3"), chess.White) {
		t.Error("IsLegal(pinned bishop e2-d3) = false, want true")
	}
}

func TestIsLegal_DoesNotMutate(t *testing.T) {
	board := chess.NewBoard()
	before := board
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			LegalDestinations(&board, chess.Sq(row, col), chess.White)
			LegalDestinations(&board, chess.Sq(row, col), chess.Black)
		}
	}
	if board != before {
		t.Error("board changed after enumerating every destination")
	}
}

func TestIsLegal_Idempotent(t *testing.T) {
	placements := []string{
		InitialPlacement,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w",
		"4r3/8/8/8/8/8/4B3/4K3 w",
	}

	for _, placement := range placements {
		board := mustDecode(t, placement)
		for from := 0; from < 64; from++ {
			for to := 0; to < 64; to++ {
				f, d := chess.Sq(from/8, from%8), chess.Sq(to/8, to%8)
				for _, mover := range []chess.Player{chess.White, chess.Black} {
					first := IsLegal(board, f, d, mover)
					second := IsLegal(board, f, d, mover)
					if first != second {
						t.Fatalf("IsLegal(%q, %s, %s, %v) = %v then %v", placement, f, d, mover, first, second)
					}
				}
			}
		}
	}
}
