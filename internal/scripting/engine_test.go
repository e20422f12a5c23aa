package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arenasim/arena/internal/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeScript(t *testing.T, dir, sub, name, src string) {
	t.Helper()
	d := filepath.Join(dir, sub)
	require.NoError(t, os.MkdirAll(d, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(d, name), []byte(src), 0o644))
}

func TestEngineDefaults(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "none"), zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, uint(1), e.ContactDamage(component.PlayerProjectile, component.Obstacle))
	assert.Equal(t, uint(1), e.ContactDamage(component.EnemyProjectile, component.Player))
	assert.Equal(t, uint(1), e.ContactDamage(component.Enemy, component.PlayerProjectile))
	assert.Equal(t, uint(1), e.ContactDamage(component.Player, component.EnemyProjectile))
	assert.Equal(t, uint(1), e.ContactDamage(component.Player, component.Enemy))
	assert.Equal(t, uint(0), e.ContactDamage(component.Enemy, component.Player))
	assert.Equal(t, uint(0), e.ContactDamage(component.Player, component.Obstacle))
	assert.Equal(t, uint(0), e.ContactDamage(component.MoveTypeCount, component.Player))

	assert.Equal(t, 3, e.EnemyCount(1))
	assert.Equal(t, uint(20), e.LevelHeal(1))
}

func TestShippedScriptsMatchDefaults(t *testing.T) {
	shipped, err := NewEngine(filepath.Join("..", "..", "scripts"), zap.NewNop())
	require.NoError(t, err)
	defer shipped.Close()
	builtin, err := NewEngine(filepath.Join(t.TempDir(), "none"), zap.NewNop())
	require.NoError(t, err)
	defer builtin.Close()

	for s := component.MoveType(0); s < component.MoveTypeCount; s++ {
		for o := component.MoveType(0); o < component.MoveTypeCount; o++ {
			assert.Equal(t, builtin.ContactDamage(s, o), shipped.ContactDamage(s, o), "%s hit by %s", s, o)
		}
	}
	for level := 1; level <= 3; level++ {
		assert.Equal(t, builtin.EnemyCount(level), shipped.EnemyCount(level))
		assert.Equal(t, builtin.LevelHeal(level), shipped.LevelHeal(level))
	}
}

func TestEngineLuaOverrides(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "combat", "contact.lua", `
function contact_damage(subject, other, def)
  if subject == "Enemy" and other == "Player" then
    return 4
  end
  return def
end
`)
	writeScript(t, dir, "level", "level.lua", `
function enemy_count(level) return level * 2 end
function level_heal(level) return -5 end
`)
	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, uint(4), e.ContactDamage(component.Enemy, component.Player))
	assert.Equal(t, uint(1), e.ContactDamage(component.Player, component.Enemy))
	assert.Equal(t, 6, e.EnemyCount(3))
	assert.Equal(t, uint(0), e.LevelHeal(1), "negative heal is clamped")
}

func TestEngineRuntimeErrorFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "level", "level.lua", `function enemy_count(level) error("boom") end`)
	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, 3, e.EnemyCount(1))
}

func TestEngineSyntaxErrorFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "combat", "bad.lua", `function contact_damage(`)
	_, err := NewEngine(dir, zap.NewNop())
	assert.Error(t, err)
}
