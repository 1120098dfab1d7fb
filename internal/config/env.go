package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/errors"
	"github.com/lgbarn/chessme-go/internal/logger"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHESSME_"

// Load returns the defaults overridden by a .env file and CHESSME_*
// environment variables. Without files, ".env" is read when present; files
// given explicitly must exist. Variables already set in the environment win
// over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, errors.Wrap(err, "loading env file")
		}
	}

	cfg := NewConfig()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("LOG_LEVEL"); ok {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return envError("LOG_LEVEL", v, err)
		}
		c.LogLevel = level
	}
	if err := envBool("LOG_COLORS", &c.LogColors); err != nil {
		return err
	}
	if v, ok := lookup("MOVE_FILTER"); ok {
		filter, err := engine.ParseMoveFilter(v)
		if err != nil {
			return envError("MOVE_FILTER", v, err)
		}
		c.Filter.MoveFilter = filter
	}
	if err := envBool("STOP_AT_RESULT", &c.Filter.StopAtResult); err != nil {
		return err
	}
	if v, ok := lookup("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("WORKERS", v, err)
		}
		c.Workers = n
	}
	if err := envBool("PRINT_PLACEMENT", &c.Output.PrintPlacements); err != nil {
		return err
	}

	envString("ARCHIVE_DIR", &c.ArchiveDir)
	envString("FORMAT", &c.Output.Format)
	envString("EVENT", &c.Output.Event)
	envString("SITE", &c.Output.Site)
	envString("DATE", &c.Output.Date)
	envString("ROUND", &c.Output.Round)
	envString("WHITE", &c.Output.White)
	envString("BLACK", &c.Output.Black)
	return nil
}

func lookup(key string) (string, bool) {
	v := os.Getenv(EnvPrefix + key)
	return v, v != ""
}

func envString(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func envBool(key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return envError(key, v, err)
	}
	*dst = b
	return nil
}

func envError(key, value string, err error) error {
	return fmt.Errorf("%s%s=%q: %v: %w", EnvPrefix, key, value, err, errors.ErrInvalidConfig)
}
