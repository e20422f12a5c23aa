package system

import (
	"time"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/config"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/vec"
	"github.com/arenasim/arena/internal/world"
)

// BoundsSystem keeps movers inside the play area. A projectile whose hitbox
// has left the area entirely is removed: health-tracked ones through a
// lethal damage request, the rest directly. Every other mover is clamped so
// its hitbox stays inside. Phase 4.
type BoundsSystem struct {
	world *world.State
	bus   *event.Bus
	area  config.Rect
	out   []ecs.EntityID
}

func NewBoundsSystem(ws *world.State, bus *event.Bus, area config.Rect) *BoundsSystem {
	return &BoundsSystem{world: ws, bus: bus, area: area}
}

func (s *BoundsSystem) Phase() coresys.Phase { return coresys.PhaseCollisionEffects }

func (s *BoundsSystem) Update(_ time.Duration) {
	s.out = s.out[:0]
	ecs.Each2(s.world.Velocities, s.world.Transforms, func(id ecs.EntityID, _ *component.Velocity, tf *component.Transform) {
		var size vec.Vec2
		if hb, ok := s.world.Hitboxes.Get(id); ok {
			size = hb.Size
		}
		if mt, ok := s.world.MoveTypes.Get(id); ok && mt.IsProjectile() {
			if s.outside(tf.Pos, size) {
				s.out = append(s.out, id)
			}
			return
		}
		tf.Pos = s.clamp(tf.Pos, size)
	})
	for _, id := range s.out {
		if h, ok := s.world.Healths.Get(id); ok {
			if h.Current > 0 {
				s.bus.Damage.Emit(event.TakeDamage{Entity: id, Amount: h.Current})
			}
			continue
		}
		s.world.Despawn(id)
	}
}

// outside reports whether the box [pos, pos+size] shares no point with the
// play area.
func (s *BoundsSystem) outside(pos, size vec.Vec2) bool {
	return pos.X+size.X < s.area.MinX || pos.X > s.area.MaxX ||
		pos.Y+size.Y < s.area.MinY || pos.Y > s.area.MaxY
}

func (s *BoundsSystem) clamp(pos, size vec.Vec2) vec.Vec2 {
	return vec.New(
		clampAxis(pos.X, s.area.MinX, s.area.MaxX-size.X),
		clampAxis(pos.Y, s.area.MinY, s.area.MaxY-size.Y),
	)
}

// clampAxis bounds v to [lo, hi]; a box wider than the area pins to lo.
func clampAxis(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
