package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/hdbool/config"
)

var (
	Version = "0.0.0"
	Commit  = ""
)

const envPrefix = "HDBOOL"

// app holds the state shared by all commands of a single invocation.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "hdbool",
		Short: "Inspect and survey Heavy Duty Bool words",
		Long: `hdbool encodes booleans as redundant all-1/all-0 bytes and decodes
possibly corrupted bytes back by majority vote.
For more information take a look at the subcommands.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", defaults.ConfigFile, "config file path")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String("format", defaults.Format, "output format (table, plain)")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newNormalizeCmd(a),
		newSurveyCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// load resolves the configuration in order of priority: flags, environment,
// config file, defaults.
func (a *app) load(flags *pflag.FlagSet) error {
	vip := viper.New()
	if err := vip.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	fileLocation := vip.GetString("config")
	if err := loadConfigFile(fileLocation, vip); err != nil {
		// The default config file is optional.
		explicit := flags.Changed("config") || os.Getenv(envPrefix+"_CONFIG") != ""
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ConfigFile = fileLocation

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("config loaded", zap.String("file", cfg.ConfigFile))
	return nil
}

func loadConfigFile(fileLocation string, vip *viper.Viper) error {
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(fileLocation); statErr != nil {
			return fmt.Errorf("config file %s: %w", fileLocation, statErr)
		}
		return fmt.Errorf("failed to read config file %s: %w", fileLocation, err)
	}
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	return logger, nil
}
