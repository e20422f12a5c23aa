package system

import (
	"time"

	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/world"
)

// ContactDamageSystem turns directional collision events into damage
// requests for their subjects. Phase 4 (CollisionEffects).
type ContactDamageSystem struct {
	world *world.State
	bus   *event.Bus
	rules DamageRules
}

func NewContactDamageSystem(ws *world.State, bus *event.Bus, rules DamageRules) *ContactDamageSystem {
	return &ContactDamageSystem{world: ws, bus: bus, rules: rules}
}

func (s *ContactDamageSystem) Phase() coresys.Phase { return coresys.PhaseCollisionEffects }

func (s *ContactDamageSystem) Update(_ time.Duration) {
	for _, c := range s.bus.Collisions.Events() {
		if !s.world.Healths.Has(c.Subject) {
			continue
		}
		amt := s.rules.ContactDamage(c.SubjectType, c.OtherType)
		if amt == 0 {
			continue
		}
		s.bus.Damage.Emit(event.TakeDamage{Entity: c.Subject, Amount: amt})
	}
}
