package world

import (
	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/vec"
)

// Body is the minimum every movement participant needs.
type Body struct {
	Type   component.MoveType
	Pos    vec.Vec2
	Z      int
	Hitbox component.Hitbox
}

// Spawn registers a movement participant. It joins the move phase from the
// next Move phase on.
func (s *State) Spawn(b Body) ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Transforms.Set(id, component.Transform{Pos: b.Pos, Z: b.Z})
	s.Hitboxes.Set(id, b.Hitbox)
	s.MoveTypes.Set(id, b.Type)
	return id
}

// SpawnMover registers a participant with a velocity accumulator, optional
// health (0 = none) and a speed.
func (s *State) SpawnMover(b Body, speed float32, maxHealth uint) ecs.EntityID {
	id := s.Spawn(b)
	s.Velocities.Set(id, component.Velocity{})
	s.Speeds.Set(id, component.Speed{Value: speed})
	if maxHealth > 0 {
		s.Healths.Set(id, component.NewHealth(maxHealth))
	}
	return id
}

func Rect(w, h float32) component.Hitbox {
	return component.Hitbox{Shape: component.ShapeRect, Size: vec.New(w, h)}
}

// Despawn removes an entity that does not take part in health tracking.
// Health-tracked entities leave only through a DeathEvent consumer.
func (s *State) Despawn(id ecs.EntityID) bool {
	if s.Healths.Has(id) {
		return false
	}
	s.ECS.MarkForDestruction(id)
	return true
}
