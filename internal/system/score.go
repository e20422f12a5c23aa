package system

import (
	"time"

	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/metrics"
	"github.com/arenasim/arena/internal/persist"
	"github.com/arenasim/arena/internal/world"
)

// DeathRecorder receives one row per death for persistence.
type DeathRecorder interface {
	RecordDeath(row persist.DeathRow)
}

// ScoreSystem counts deaths per move type. Phase 6 (Death); registered
// before DespawnSystem.
type ScoreSystem struct {
	world    *world.State
	bus      *event.Bus
	metrics  *metrics.Metrics
	recorder DeathRecorder
}

func NewScoreSystem(ws *world.State, bus *event.Bus, m *metrics.Metrics, rec DeathRecorder) *ScoreSystem {
	return &ScoreSystem{world: ws, bus: bus, metrics: m, recorder: rec}
}

func (s *ScoreSystem) Phase() coresys.Phase { return coresys.PhaseDeath }

func (s *ScoreSystem) Update(_ time.Duration) {
	for _, ev := range s.bus.Deaths.Events() {
		mt, ok := s.world.MoveTypes.Get(ev.Entity)
		if !ok {
			continue
		}
		s.world.Score.Kills[*mt]++
		if s.metrics != nil {
			s.metrics.AddDeath(*mt)
		}
		if s.recorder == nil {
			continue
		}
		row := persist.DeathRow{Tick: s.world.Tick, Level: s.world.Level, MoveType: mt.String()}
		if tf, ok := s.world.Transforms.Get(ev.Entity); ok {
			row.X, row.Y = tf.Pos.X, tf.Pos.Y
		}
		s.recorder.RecordDeath(row)
	}
}
