package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/hdbool/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, lvl)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"negative min flips", func(c *config.Config) { c.MinFlips = -1 }},
		{"max flips too large", func(c *config.Config) { c.MaxFlips = 9 }},
		{"inverted range", func(c *config.Config) { c.MinFlips, c.MaxFlips = 5, 4 }},
		{"no workers", func(c *config.Config) { c.Workers = 0 }},
		{"too many workers", func(c *config.Config) { c.Workers = config.MaxWorkers + 1 }},
		{"unknown format", func(c *config.Config) { c.Format = "json" }},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "verbose" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tc.modify(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_SingleFlipCount(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.MinFlips, cfg.MaxFlips = 4, 4
	cfg.Format = config.FormatPlain
	cfg.LogLevel = "debug"

	require.NoError(t, cfg.Validate())
}
