package system

import (
	"time"

	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/metrics"
	"github.com/arenasim/arena/internal/world"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end
// and advances the tick counter. Phase 8 (Cleanup).
type CleanupSystem struct {
	world   *world.State
	metrics *metrics.Metrics
}

func NewCleanupSystem(ws *world.State, m *metrics.Metrics) *CleanupSystem {
	return &CleanupSystem{world: ws, metrics: m}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.ECS.FlushDestroyQueue()
	if s.metrics != nil {
		s.metrics.SetEntities(s.world.ECS.Pool().Len())
	}
	s.world.Tick++
}
