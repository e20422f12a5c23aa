package component

import (
	"time"

	"github.com/arenasim/arena/internal/vec"
)

// Speed scales a unit intent into a velocity contribution (units/second).
type Speed struct {
	Value float32
}

// Direction is the fixed heading of a projectile.
type Direction struct {
	V vec.Vec2
}

// PlayerTag marks the controlled entity.
type PlayerTag struct{}

// EnemyTag marks chasing enemies.
type EnemyTag struct{}

// Projectile records who fired it.
type Projectile struct {
	Owner MoveType
}

// Weapon gates projectile spawning. Cooldown 0 disables firing.
type Weapon struct {
	Cooldown  time.Duration
	Remaining time.Duration
}

// MapTile marks entities spawned from a map description so level teardown
// can remove them.
type MapTile struct {
	MapID int
}
