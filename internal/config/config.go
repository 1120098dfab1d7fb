// Package config provides configuration for chessme.
package config

import (
	"fmt"

	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/errors"
	"github.com/lgbarn/chessme-go/internal/logger"
	"github.com/lgbarn/chessme-go/internal/output"
)

// Config holds all program configuration.
type Config struct {
	// Logging
	LogLevel  logger.Level
	LogColors bool

	// ArchiveDir is the badger directory finished games are stored in.
	// Empty disables archiving.
	ArchiveDir string

	// Workers is the number of scripts replayed concurrently.
	Workers int

	Output *OutputConfig
	Filter *FilterConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:  logger.INFO,
		LogColors: true,
		Workers:   1,
		Output:    NewOutputConfig(),
		Filter:    NewFilterConfig(),
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.LogLevel < logger.DEBUG || c.LogLevel > logger.ERROR {
		return fmt.Errorf("log level %d: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}

// Header returns the PGN tag values.
func (c *Config) Header() output.Header {
	return output.Header{
		Event: c.Output.Event,
		Site:  c.Output.Site,
		Date:  c.Output.Date,
		Round: c.Output.Round,
	}
}

// MoveFilter returns the filter used to classify positions.
func (c *Config) MoveFilter() engine.MoveFilter {
	return c.Filter.MoveFilter
}

// Logger builds a logger from the logging settings.
func (c *Config) Logger(opts ...logger.Option) *logger.Logger {
	base := []logger.Option{logger.WithLevel(c.LogLevel), logger.WithColors(c.LogColors)}
	return logger.New(append(base, opts...)...)
}
