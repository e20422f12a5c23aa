package main

import (
	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/vec"
	"github.com/arenasim/arena/internal/world"
)

// strafeTicks is how long the autopilot strafes in one direction.
const strafeTicks = 40

// autopilot plays the headless run: it strafes back and forth and shoots
// at the nearest enemy.
type autopilot struct {
	ws *world.State
}

func newAutopilot(ws *world.State) *autopilot {
	return &autopilot{ws: ws}
}

func (a *autopilot) PlayerIntent() world.Intent {
	me, ok := a.ws.PlayerPos()
	if !ok {
		return world.Intent{}
	}
	move := vec.New(0, 1)
	if (a.ws.Tick/strafeTicks)%2 == 1 {
		move = vec.New(0, -1)
	}

	var target vec.Vec2
	best := float32(-1)
	ecs.Each2(a.ws.Enemies, a.ws.Transforms, func(_ ecs.EntityID, _ *component.EnemyTag, tf *component.Transform) {
		d := tf.Pos.ManhattanTo(me.Pos)
		if best < 0 || d < best {
			best, target = d, tf.Pos
		}
	})
	in := world.Intent{Move: move}
	if best >= 0 {
		in.Fire = target.Sub(me.Pos)
	}
	return in
}

func moveTypeName(i int) string {
	return component.MoveType(i).String()
}
