package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
[sim]
tick_rate = "20ms"
strict = true

[enemy]
speed = 35.0

[level]
max_level = 5

[logging]
format = "json"
`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, cfg.Sim.TickRate)
	assert.True(t, cfg.Sim.Strict)
	assert.Equal(t, float32(35), cfg.Enemy.Speed)
	assert.Equal(t, float32(20), cfg.Enemy.Width, "unset keys keep their default")
	assert.Equal(t, 5, cfg.Level.MaxLevel)
	assert.Equal(t, float32(100), cfg.Sim.CellSize)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(c *Config){
		"tick":       func(c *Config) { c.Sim.TickRate = 0 },
		"cell":       func(c *Config) { c.Sim.CellSize = 0 },
		"play area":  func(c *Config) { c.Sim.PlayArea.MaxX = c.Sim.PlayArea.MinX },
		"big hitbox": func(c *Config) { c.Projectile.Height = 100 },
		"max level":  func(c *Config) { c.Level.MaxLevel = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := Defaults()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRectContains(t *testing.T) {
	r := Rect{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(10, -10))
	assert.False(t, r.Contains(10.5, 0))
}
