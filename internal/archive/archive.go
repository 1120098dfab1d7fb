// Package archive stores finished games in a badger database.
package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/errors"
	"github.com/lgbarn/chessme-go/internal/game"
)

const (
	gamePrefix = "game/"
	keyStats   = "stats"
)

// Record is one archived game.
type Record struct {
	ID        string    `json:"id"`
	White     string    `json:"white"`
	Black     string    `json:"black"`
	Result    string    `json:"result"`
	Placement string    `json:"placement"`
	Moves     []string  `json:"moves"`
	PGN       string    `json:"pgn"`
	SavedAt   time.Time `json:"saved_at"`
}

// NewRecord snapshots g with side as the side to move in the final position.
func NewRecord(g *game.Game, white, black string, side chess.Player) *Record {
	result := g.Result(side)
	return &Record{
		ID:        g.ID().String(),
		White:     white,
		Black:     black,
		Result:    result.String(),
		Placement: g.Placement(side),
		Moves:     g.History(),
		PGN:       g.PGN(white, black, result.String()),
	}
}

// Stats counts archived games by result.
type Stats struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Draws      int `json:"draws"`
	Unfinished int `json:"unfinished"`
}

func (s *Stats) add(result string) {
	s.Games++
	switch engine.Result(result) {
	case engine.WhiteWins:
		s.WhiteWins++
	case engine.BlackWins:
		s.BlackWins++
	case engine.Draw:
		s.Draws++
	default:
		s.Unfinished++
	}
}

// Archive wraps BadgerDB for persistent game storage.
// It is safe for concurrent use.
type Archive struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens or creates the archive in dir. An empty dir keeps everything in
// memory.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive %q", dir)
	}
	return &Archive{db: db, now: time.Now}, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// Save stores rec under its ID, stamping SavedAt. Saving an existing ID
// replaces the record; the result counters only count an ID once.
func (a *Archive) Save(rec *Record) error {
	if _, err := uuid.Parse(rec.ID); err != nil {
		return fmt.Errorf("record id %q: %w", rec.ID, err)
	}
	rec.SavedAt = a.now().UTC()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return a.db.Update(func(txn *badger.Txn) error {
		stats, err := loadStats(txn)
		if err != nil {
			return err
		}

		_, err = txn.Get(gameKey(rec.ID))
		switch {
		case err == badger.ErrKeyNotFound:
			stats.add(rec.Result)
		case err != nil:
			return err
		}

		statsData, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(keyStats), statsData); err != nil {
			return err
		}
		return txn.Set(gameKey(rec.ID), data)
	})
}

// Load returns the record stored under id, or an error wrapping
// errors.ErrGameNotFound.
func (a *Archive) Load(id string) (*Record, error) {
	rec := &Record{}

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every record in key order.
func (a *Archive) List() ([]*Record, error) {
	var records []*Record
	prefix := []byte(gamePrefix)

	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			rec := &Record{}
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// Stats returns the result counters.
func (a *Archive) Stats() (*Stats, error) {
	var stats *Stats
	err := a.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	return stats, err
}

func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := &Stats{}
	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}
