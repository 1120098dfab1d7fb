package config

import (
	"fmt"

	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/errors"
)

// FilterConfig holds settings that decide when a replayed game ends.
type FilterConfig struct {
	// MoveFilter decides what counts as having a move when classifying
	MoveFilter engine.MoveFilter

	// StopAtResult ends a replay at the first decisive or drawn position
	StopAtResult bool
}

// NewFilterConfig creates a FilterConfig with default values.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{
		MoveFilter:   engine.KingSafe,
		StopAtResult: true,
	}
}

// Validate checks the filter settings.
func (f *FilterConfig) Validate() error {
	switch f.MoveFilter {
	case engine.KingSafe, engine.Structural:
		return nil
	}
	return fmt.Errorf("move filter %d: %w", int(f.MoveFilter), errors.ErrInvalidConfig)
}
