// Package config loads hamroute settings from defaults, an optional config
// file, HAMROUTE_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hamroute/core"
	"github.com/katalvlaran/hamroute/hampath"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Keys understood by Load. Flags bind to the same keys.
const (
	KeySolverParallel          = "solver.parallel"
	KeySolverSharedMemo        = "solver.shared_memo"
	KeySolverConnectivityCheck = "solver.connectivity_check"
	KeySolverMaxLocations      = "solver.max_locations"
	KeyInputStrict             = "input.strict"
	KeyLogLevel                = "log.level"
)

const (
	envPrefix         = "HAMROUTE"
	defaultConfigName = "hamroute"
	defaultLogLevel   = "warn"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Input  InputConfig  `mapstructure:"input"`
	Log    LogConfig    `mapstructure:"log"`
}

// SolverConfig mirrors the hampath options.
type SolverConfig struct {
	Parallel          int  `mapstructure:"parallel"`
	SharedMemo        bool `mapstructure:"shared_memo"`
	ConnectivityCheck bool `mapstructure:"connectivity_check"`
	MaxLocations      int  `mapstructure:"max_locations"`
}

// InputConfig controls how route files are read. Strict rejects a
// location pair listed twice instead of keeping the last distance.
type InputConfig struct {
	Strict bool `mapstructure:"strict"`
}

// LogConfig selects the zap level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NewViper returns a viper instance with defaults and environment lookup set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySolverParallel, hampath.DefaultParallel)
	v.SetDefault(KeySolverSharedMemo, hampath.DefaultSharedMemo)
	v.SetDefault(KeySolverConnectivityCheck, hampath.DefaultConnectivityCheck)
	v.SetDefault(KeySolverMaxLocations, hampath.MaxLocations)
	v.SetDefault(KeyInputStrict, false)
	v.SetDefault(KeyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path into v (or looks for ./hamroute.{yaml,json,toml} when path
// is empty; a missing default file is not an error) and returns the
// validated configuration.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges before the values reach hampath, whose option
// constructors panic on nonsense.
func (c Config) Validate() error {
	if c.Solver.Parallel < 1 {
		return fmt.Errorf("%s=%d: %w", KeySolverParallel, c.Solver.Parallel, ErrInvalid)
	}
	if c.Solver.MaxLocations < 1 || c.Solver.MaxLocations > hampath.MaxLocations {
		return fmt.Errorf("%s=%d (want 1..%d): %w",
			KeySolverMaxLocations, c.Solver.MaxLocations, hampath.MaxLocations, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s=%q: %w", KeyLogLevel, c.Log.Level, ErrInvalid)
	}

	return nil
}

// SolverOptions translates the solver section into hampath options.
func (c Config) SolverOptions(logger *zap.Logger) []hampath.Option {
	opts := []hampath.Option{
		hampath.WithParallel(c.Solver.Parallel),
		hampath.WithSharedMemo(c.Solver.SharedMemo),
		hampath.WithConnectivityCheck(c.Solver.ConnectivityCheck),
		hampath.WithMaxLocations(c.Solver.MaxLocations),
	}
	if logger != nil {
		opts = append(opts, hampath.WithLogger(logger))
	}

	return opts
}

// GraphOptions translates the input section into core graph options.
func (c Config) GraphOptions() []core.GraphOption {
	if c.Input.Strict {
		return []core.GraphOption{core.WithStrictEdges()}
	}

	return nil
}
