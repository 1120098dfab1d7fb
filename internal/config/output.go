package config

import (
	"fmt"

	"github.com/lgbarn/chessme-go/internal/errors"
	"github.com/lgbarn/chessme-go/internal/output"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is "pgn" or "json"
	Format string

	// PrintPlacements lists the placement string after every move
	PrintPlacements bool

	// Tag values written above every game
	Event string
	Site  string
	Date  string
	Round string

	// Player names used when a script has no White/Black tag
	White string
	Black string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	h := output.DefaultHeader()
	return &OutputConfig{
		Format: "pgn",
		Event:  h.Event,
		Site:   h.Site,
		Date:   h.Date,
		Round:  h.Round,
		White:  "White",
		Black:  "Black",
	}
}

// Validate checks the output format.
func (o *OutputConfig) Validate() error {
	switch o.Format {
	case "pgn", "json":
		return nil
	}
	return fmt.Errorf("output format %q: %w", o.Format, errors.ErrInvalidConfig)
}
