package system

import (
	"time"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/vec"
	"github.com/arenasim/arena/internal/world"
)

// ClearVelocitySystem zeroes every velocity accumulator. Phase 1.
type ClearVelocitySystem struct {
	world *world.State
}

func NewClearVelocitySystem(ws *world.State) *ClearVelocitySystem {
	return &ClearVelocitySystem{world: ws}
}

func (s *ClearVelocitySystem) Phase() coresys.Phase { return coresys.PhaseClearVelocity }

func (s *ClearVelocitySystem) Update(_ time.Duration) {
	s.world.Velocities.Each(func(_ ecs.EntityID, v *component.Velocity) {
		v.V = vec.Zero
	})
}

// The producers below run in Phase 2 in no guaranteed order. Each only adds
// to the accumulator and never reads it.

// PlayerControlSystem adds the sampled move intent, normalised and scaled by
// the player's speed.
type PlayerControlSystem struct {
	world *world.State
}

func NewPlayerControlSystem(ws *world.State) *PlayerControlSystem {
	return &PlayerControlSystem{world: ws}
}

func (s *PlayerControlSystem) Phase() coresys.Phase { return coresys.PhaseModifyVelocity }

func (s *PlayerControlSystem) Update(_ time.Duration) {
	dir := s.world.Intent.Move.NormalizeOrZero()
	if dir.IsZero() {
		return
	}
	ecs.Each3(s.world.Players, s.world.Velocities, s.world.Speeds,
		func(_ ecs.EntityID, _ *component.PlayerTag, v *component.Velocity, sp *component.Speed) {
			v.V = v.V.Add(dir.Scale(sp.Value))
		})
}

// EnemyChaseSystem steers every enemy straight at the player.
type EnemyChaseSystem struct {
	world *world.State
}

func NewEnemyChaseSystem(ws *world.State) *EnemyChaseSystem {
	return &EnemyChaseSystem{world: ws}
}

func (s *EnemyChaseSystem) Phase() coresys.Phase { return coresys.PhaseModifyVelocity }

func (s *EnemyChaseSystem) Update(_ time.Duration) {
	if _, ok := s.world.PlayerPos(); !ok {
		return
	}
	target, ok := s.world.Centre(s.world.Player)
	if !ok {
		return
	}
	ecs.Each3(s.world.Enemies, s.world.Velocities, s.world.Speeds,
		func(id ecs.EntityID, _ *component.EnemyTag, v *component.Velocity, sp *component.Speed) {
			from, ok := s.world.Centre(id)
			if !ok {
				return
			}
			dir := target.Sub(from).NormalizeOrZero()
			v.V = v.V.Add(dir.Scale(sp.Value))
		})
}

// ProjectileDriveSystem pushes projectiles along their fixed direction.
type ProjectileDriveSystem struct {
	world *world.State
}

func NewProjectileDriveSystem(ws *world.State) *ProjectileDriveSystem {
	return &ProjectileDriveSystem{world: ws}
}

func (s *ProjectileDriveSystem) Phase() coresys.Phase { return coresys.PhaseModifyVelocity }

func (s *ProjectileDriveSystem) Update(_ time.Duration) {
	ecs.Each3(s.world.Directions, s.world.Velocities, s.world.Speeds,
		func(_ ecs.EntityID, d *component.Direction, v *component.Velocity, sp *component.Speed) {
			v.V = v.V.Add(d.V.Scale(sp.Value))
		})
}
