package system

import (
	"time"

	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/world"
	"go.uber.org/zap"
)

// DespawnSystem is the removal consumer of Death events: it queues dead
// entities for destruction at cleanup. The player's death ends the run.
// Phase 6 (Death).
type DespawnSystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger
}

func NewDespawnSystem(ws *world.State, bus *event.Bus, log *zap.Logger) *DespawnSystem {
	return &DespawnSystem{world: ws, bus: bus, log: log}
}

func (s *DespawnSystem) Phase() coresys.Phase { return coresys.PhaseDeath }

func (s *DespawnSystem) Update(_ time.Duration) {
	for _, ev := range s.bus.Deaths.Events() {
		if !s.world.ECS.Alive(ev.Entity) {
			continue
		}
		s.world.ECS.MarkForDestruction(ev.Entity)
		if s.world.Players.Has(ev.Entity) && s.world.Outcome == world.Running {
			s.world.Outcome = world.Lost
			s.log.Info("player died",
				zap.Int("level", s.world.Level),
				zap.Int64("tick", s.world.Tick))
		}
	}
}
