package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Second, cfg.Timing.StepDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.MoveDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.LockDelay)
	assert.False(t, cfg.SpeedCurve)
	assert.NoError(t, cfg.Validate())
}

func TestConfigLoadEnv(t *testing.T) {
	t.Setenv(EnvStepDelay, "750ms")
	t.Setenv(EnvMoveDelay, " 50ms ")
	t.Setenv(EnvLockDelay, "")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvSpeedup, "true")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadEnv())

	assert.Equal(t, 750*time.Millisecond, cfg.Timing.StepDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.Timing.MoveDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.LockDelay)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.True(t, cfg.SpeedCurve)
}

func TestConfigLoadEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{EnvStepDelay, EnvSeed, EnvSpeedup} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "not-a-value")
			cfg := DefaultConfig()
			assert.ErrorIs(t, cfg.LoadEnv(), ErrInvalidConfig)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timing.StepDelay = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Timing.MoveDelay = -time.Millisecond
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Timing.LockDelay = -time.Millisecond
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Timing.LockDelay = 0
	assert.NoError(t, cfg.Validate())
}
