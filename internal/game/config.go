package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hersh/kicktris/internal/piece"
)

var ErrInvalidConfig = errors.New("invalid config")

// Environment variables read by LoadEnv.
const (
	EnvStepDelay = "KICKTRIS_STEP_DELAY"
	EnvMoveDelay = "KICKTRIS_MOVE_DELAY"
	EnvLockDelay = "KICKTRIS_LOCK_DELAY"
	EnvSeed      = "KICKTRIS_SEED"
	EnvSpeedup   = "KICKTRIS_SPEEDUP"
)

type Config struct {
	PlayerName string
	Timing     piece.Timing
	// Seed feeds the 7-bag generator.
	Seed int64
	// SpeedCurve makes gravity follow the per-level table instead of
	// Timing.StepDelay.
	SpeedCurve bool
}

func DefaultConfig() Config {
	return Config{
		PlayerName: "Player",
		Timing:     piece.DefaultTiming(),
		Seed:       1,
	}
}

// LoadEnv overrides fields from the environment. Unset variables are left
// alone.
func (c *Config) LoadEnv() error {
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvStepDelay, &c.Timing.StepDelay},
		{EnvMoveDelay, &c.Timing.MoveDelay},
		{EnvLockDelay, &c.Timing.LockDelay},
	}
	for _, d := range durations {
		v, ok := lookupEnv(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, d.key, err)
		}
		*d.dst = parsed
	}

	if v, ok := lookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSeed, err)
		}
		c.Seed = seed
	}

	if v, ok := lookupEnv(EnvSpeedup); ok {
		speedup, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSpeedup, err)
		}
		c.SpeedCurve = speedup
	}
	return nil
}

func (c Config) Validate() error {
	if c.Timing.StepDelay <= 0 {
		return fmt.Errorf("%w: step delay must be positive, got %v", ErrInvalidConfig, c.Timing.StepDelay)
	}
	if c.Timing.MoveDelay <= 0 {
		return fmt.Errorf("%w: move delay must be positive, got %v", ErrInvalidConfig, c.Timing.MoveDelay)
	}
	if c.Timing.LockDelay < 0 {
		return fmt.Errorf("%w: lock delay must not be negative, got %v", ErrInvalidConfig, c.Timing.LockDelay)
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
