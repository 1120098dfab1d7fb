// Package hashing provides duplicate detection for replayed games.
package hashing

import "github.com/lgbarn/chessme-go/internal/chess"

// numRoles counts chess.None too so roles index the table directly.
const numRoles = int(chess.Pawn) + 1

var (
	pieceKeys [numRoles][2][chess.BoardSize * chess.BoardSize]uint64
	blackKey  uint64
)

func init() {
	// splitmix64 with a fixed seed keeps hashes stable between runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for role := 1; role < numRoles; role++ {
		for owner := 0; owner < 2; owner++ {
			for sq := range pieceKeys[role][owner] {
				pieceKeys[role][owner][sq] = next()
			}
		}
	}
	blackKey = next()
}

// PositionHash returns the Zobrist hash of the pieces and the side to move.
func PositionHash(board *chess.Board, side chess.Player) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[piece.Role][piece.Owner][row*chess.BoardSize+col]
		}
	}
	if side == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of recorded moves
	Plies int
}

// DuplicateDetector tracks final positions of games already seen.
type DuplicateDetector struct {
	hashTable      map[uint64][]GameSignature
	exactMatch     bool // also require the same number of plies
	maxCapacity    int  // 0 means unlimited
	size           int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]GameSignature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether a game with this final position was seen
// before and remembers it otherwise. Once full, new games are still checked
// but no longer remembered.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, side chess.Player, plies int) bool {
	if board == nil {
		return false
	}

	sig := GameSignature{Hash: PositionHash(board, side), Plies: plies}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
