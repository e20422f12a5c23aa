package system

import (
	"math/rand"
	"testing"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/config"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/core/event"
	"github.com/arenasim/arena/internal/scripting"
	"github.com/arenasim/arena/internal/vec"
	"github.com/arenasim/arena/internal/world"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// defaultRules returns a rule engine with no scripts loaded.
func defaultRules(t *testing.T) *scripting.Engine {
	t.Helper()
	e, err := scripting.NewEngine(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	return Deps{
		World:  world.NewState(),
		Bus:    event.NewBus(),
		Config: config.Defaults(),
		Rules:  defaultRules(t),
		Log:    zap.NewNop(),
		Rand:   rand.New(rand.NewSource(1)),
	}
}

func spawnBox(ws *world.State, mt component.MoveType, x, y, w, h float32) ecs.EntityID {
	return ws.Spawn(world.Body{Type: mt, Pos: vec.New(x, y), Hitbox: world.Rect(w, h)})
}

func spawnMover(ws *world.State, mt component.MoveType, x, y, w, h float32, vel vec.Vec2, maxHealth uint) ecs.EntityID {
	id := ws.SpawnMover(world.Body{Type: mt, Pos: vec.New(x, y), Hitbox: world.Rect(w, h)}, 0, maxHealth)
	ws.Velocities.Set(id, component.Velocity{V: vel})
	return id
}

func pos(t *testing.T, ws *world.State, id ecs.EntityID) vec.Vec2 {
	t.Helper()
	tf, ok := ws.Transforms.Get(id)
	require.True(t, ok)
	return tf.Pos
}
