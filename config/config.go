package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"
)

const (
	MaxFlips = 8
	MinFlips = 0

	MinWorkers = 1
	MaxWorkers = 64
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultWorkers        = 4
	DefaultLogLevel       = "info"
	DefaultFormat         = FormatTable
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), ".hdbool")
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
)

type Config struct {
	ConfigFile string `mapstructure:"config"`
	LogLevel   string `mapstructure:"log-level"`
	Format     string `mapstructure:"format"`

	// Survey params.
	Workers  int `mapstructure:"workers"`
	MinFlips int `mapstructure:"min-flips"`
	MaxFlips int `mapstructure:"max-flips"`
}

func (cfg *Config) Validate() error {
	if cfg.MinFlips < MinFlips {
		return fmt.Errorf("invalid `MinFlips`; expected: >= %d, given: %d", MinFlips, cfg.MinFlips)
	}

	if cfg.MaxFlips > MaxFlips {
		return fmt.Errorf("invalid `MaxFlips`; expected: <= %d, given: %d", MaxFlips, cfg.MaxFlips)
	}

	if cfg.MinFlips > cfg.MaxFlips {
		return fmt.Errorf("invalid flip range; expected: `MinFlips` (%d) <= `MaxFlips` (%d)", cfg.MinFlips, cfg.MaxFlips)
	}

	if cfg.Workers < MinWorkers {
		return fmt.Errorf("invalid `Workers`; expected: >= %d, given: %d", MinWorkers, cfg.Workers)
	}

	if cfg.Workers > MaxWorkers {
		return fmt.Errorf("invalid `Workers`; expected: <= %d, given: %d", MaxWorkers, cfg.Workers)
	}

	if cfg.Format != FormatTable && cfg.Format != FormatPlain {
		return fmt.Errorf("invalid `Format`; expected: %q or %q, given: %q", FormatTable, FormatPlain, cfg.Format)
	}

	if _, err := cfg.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid `LogLevel`: %w", err)
	}
	return lvl, nil
}

func DefaultConfig() *Config {
	return &Config{
		ConfigFile: DefaultConfigFile,
		LogLevel:   DefaultLogLevel,
		Format:     DefaultFormat,

		Workers:  DefaultWorkers,
		MinFlips: MinFlips,
		MaxFlips: MaxFlips,
	}
}
