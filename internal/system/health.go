package system

import (
	"time"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/world"
)

// HealthSystem resolves the tick's heal and damage requests. Phase 5.
//
// All heals apply before any damage. An entity whose health reaches zero
// is Dying: it ignores every later request and is announced with exactly
// one Death event, emitted after all damage is applied, in the order the
// entities first reached zero. Requests for missing entities are dropped.
type HealthSystem struct {
	world *world.State
	bus   *event.Bus
	dying []ecs.EntityID
}

func NewHealthSystem(ws *world.State, bus *event.Bus) *HealthSystem {
	return &HealthSystem{world: ws, bus: bus}
}

func (s *HealthSystem) Phase() coresys.Phase { return coresys.PhaseHealth }

func (s *HealthSystem) Update(_ time.Duration) {
	for _, ev := range s.bus.Heals.Events() {
		if h, ok := s.world.Healths.Get(ev.Entity); ok {
			Heal(h, ev.Amount)
		}
	}

	s.dying = s.dying[:0]
	for _, ev := range s.bus.Damage.Events() {
		h, ok := s.world.Healths.Get(ev.Entity)
		if !ok {
			continue
		}
		if TakeDamage(h, ev.Amount) {
			s.dying = append(s.dying, ev.Entity)
		}
	}

	for _, id := range s.dying {
		s.bus.Deaths.Emit(event.Death{Entity: id})
	}
}

// Heal raises current health by amt, capped at max. A Dying entity stays at
// zero.
func Heal(h *component.Health, amt uint) {
	if h.Current == 0 {
		return
	}
	if h.Current >= h.Max || amt >= h.Max-h.Current {
		h.Current = h.Max
		return
	}
	h.Current += amt
}

// TakeDamage lowers current health by amt and reports whether this call
// took it to zero. Damage to a Dying entity is ignored.
func TakeDamage(h *component.Health, amt uint) bool {
	if h.Current == 0 {
		return false
	}
	if h.Current <= amt {
		h.Current = 0
		return true
	}
	h.Current -= amt
	return false
}

// HealthRatio is current/max in [0, 1], for tinting.
func HealthRatio(h component.Health) float32 {
	if h.Max == 0 {
		return 0
	}
	return float32(h.Current) / float32(h.Max)
}
