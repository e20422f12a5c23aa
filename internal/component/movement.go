package component

import (
	"fmt"

	"github.com/arenasim/arena/internal/vec"
)

// Transform is an entity's position. Z only orders sprites for rendering.
// Only the move phase writes Pos after spawn.
type Transform struct {
	Pos vec.Vec2
	Z   int
}

// Velocity accumulates per-tick contributions from intent producers. It is
// zeroed at the start of every tick.
type Velocity struct {
	V vec.Vec2
}

// Shape selects the hitbox variant.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Hitbox is anchored at Transform.Pos, its minimum corner. Size is the full
// extent (w, h); for circles Size.X is the diameter.
type Hitbox struct {
	Shape Shape
	Size  vec.Vec2
}

// MoveType drives the collision pair policy. Fixed for an entity's lifetime.
type MoveType uint8

const (
	Obstacle MoveType = iota
	Floor
	Player
	Enemy
	PlayerProjectile
	EnemyProjectile
	MoveTypeCount
)

var moveTypeNames = [MoveTypeCount]string{
	"Obstacle", "Floor", "Player", "Enemy", "PlayerProjectile", "EnemyProjectile",
}

func (t MoveType) String() string {
	if t >= MoveTypeCount {
		return fmt.Sprintf("MoveType(%d)", uint8(t))
	}
	return moveTypeNames[t]
}

func (t MoveType) IsProjectile() bool {
	return t == PlayerProjectile || t == EnemyProjectile
}

// ParseMoveType accepts the names used by map files. The legacy names
// PlayerBullet/EnemyBullet are accepted as aliases.
func ParseMoveType(s string) (MoveType, error) {
	for i, n := range moveTypeNames {
		if n == s {
			return MoveType(i), nil
		}
	}
	switch s {
	case "PlayerBullet":
		return PlayerProjectile, nil
	case "EnemyBullet":
		return EnemyProjectile, nil
	}
	return 0, fmt.Errorf("unknown move type %q", s)
}

func (t MoveType) MarshalText() ([]byte, error) {
	if t >= MoveTypeCount {
		return nil, fmt.Errorf("invalid move type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *MoveType) UnmarshalText(b []byte) error {
	v, err := ParseMoveType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
