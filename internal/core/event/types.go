package event

import (
	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
)

// Collision is directional: every overlap produces one event per side.
type Collision struct {
	Subject     ecs.EntityID
	SubjectType component.MoveType
	Other       ecs.EntityID
	OtherType   component.MoveType
}

// TakeDamage requests a health decrease. Not authoritative state.
type TakeDamage struct {
	Entity ecs.EntityID
	Amount uint
}

// Heal requests a health increase, clamped to max health.
type Heal struct {
	Entity ecs.EntityID
	Amount uint
}

// Death is the single authoritative "this entity has died" signal.
type Death struct {
	Entity ecs.EntityID
}

// SpawnEnemies asks the spawn phase for Count new enemies.
type SpawnEnemies struct {
	Count int
}
