package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/mau/players"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is read from MAU_* environment variables.
type Config struct {
	Players  int    `env:"MAU_PLAYERS,default=4"`
	Rounds   int    `env:"MAU_ROUNDS,default=4"`
	Seed     int64  `env:"MAU_SEED,default=0"`
	Strategy string `env:"MAU_STRATEGY,default=random"`
	LogLevel string `env:"MAU_LOG_LEVEL,default=info"`
	Addr     string `env:"MAU_ADDR,default=:8000"`
}

func Default() Config {
	return Config{
		Players:  4,
		Rounds:   4,
		Strategy: "random",
		LogLevel: "info",
		Addr:     ":8000",
	}
}

// Load decodes the environment on top of the defaults and validates the result.
func Load() (Config, error) {
	cfg := Default()
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Players < 2 || c.Players > 7 {
		return fmt.Errorf("%w: MAU_PLAYERS must be between 2 and 7, got %d", ErrInvalidConfig, c.Players)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: MAU_ROUNDS must be at least 1, got %d", ErrInvalidConfig, c.Rounds)
	}
	if _, err := players.StrategyByName(c.Strategy, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SeedOrNow returns the configured seed, or a time based one when unset.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Logger builds a console logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = level > zapcore.DebugLevel
	return zc.Build()
}
