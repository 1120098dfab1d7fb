package config

import (
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/logger"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts a builder from an existing Config, typically one from Load.
func From(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level logger.Level) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithMoveFilter sets the move filter.
func (b *ConfigBuilder) WithMoveFilter(filter engine.MoveFilter) *ConfigBuilder {
	b.cfg.Filter.MoveFilter = filter
	return b
}

// WithArchiveDir enables archiving into dir.
func (b *ConfigBuilder) WithArchiveDir(dir string) *ConfigBuilder {
	b.cfg.ArchiveDir = dir
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithPlacements controls whether placement strings are printed.
func (b *ConfigBuilder) WithPlacements(enabled bool) *ConfigBuilder {
	b.cfg.Output.PrintPlacements = enabled
	return b
}

// WithPlayers sets the default player names.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	if white != "" {
		b.cfg.Output.White = white
	}
	if black != "" {
		b.cfg.Output.Black = black
	}
	return b
}

// WithEvent sets the Event tag.
func (b *ConfigBuilder) WithEvent(event string) *ConfigBuilder {
	b.cfg.Output.Event = event
	return b
}
