package system

import (
	"context"
	"time"

	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/persist"
	"github.com/arenasim/arena/internal/world"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const persistTimeout = 5 * time.Second

// PersistSystem saves the run record and buffered death rows every
// interval ticks, once more when the run ends, and on Close. Failed
// writes are logged and the rows kept for the next flush. Phase 7 (Persist).
type PersistSystem struct {
	world     *world.State
	store     persist.RunStore
	runID     uuid.UUID
	startedAt time.Time
	log       *zap.Logger
	pending   []persist.DeathRow
	tickCount int
	interval  int // flush every N ticks
	ended     bool
}

func NewPersistSystem(ws *world.State, store persist.RunStore, runID uuid.UUID, log *zap.Logger, intervalTicks int) *PersistSystem {
	if intervalTicks < 1 {
		intervalTicks = 1
	}
	return &PersistSystem{
		world:     ws,
		store:     store,
		runID:     runID,
		startedAt: time.Now(),
		log:       log,
		interval:  intervalTicks,
	}
}

func (s *PersistSystem) Phase() coresys.Phase { return coresys.PhasePersist }

// RecordDeath implements DeathRecorder.
func (s *PersistSystem) RecordDeath(row persist.DeathRow) {
	s.pending = append(s.pending, row)
}

// Pending returns the number of buffered death rows.
func (s *PersistSystem) Pending() int { return len(s.pending) }

func (s *PersistSystem) Update(_ time.Duration) {
	if s.ended {
		return
	}
	if s.world.Outcome != world.Running {
		s.ended = true
		s.flush()
		return
	}
	s.tickCount++
	if s.tickCount < s.interval {
		return
	}
	s.tickCount = 0
	s.flush()
}

// Close writes everything still buffered. Called on shutdown.
func (s *PersistSystem) Close() {
	s.flush()
}

func (s *PersistSystem) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	run := persist.RunRow{
		ID:        s.runID,
		StartedAt: s.startedAt,
		Level:     s.world.Level,
		Outcome:   s.world.Outcome.String(),
		Ticks:     s.world.Tick,
	}
	if s.world.Outcome != world.Running {
		now := time.Now()
		run.EndedAt = &now
	}
	if err := s.store.SaveRun(ctx, run); err != nil {
		s.log.Error("save run failed", zap.Stringer("run", s.runID), zap.Error(err))
		return
	}
	if len(s.pending) == 0 {
		return
	}
	if err := s.store.RecordDeaths(ctx, s.runID, s.pending); err != nil {
		s.log.Error("record deaths failed",
			zap.Stringer("run", s.runID),
			zap.Int("rows", len(s.pending)),
			zap.Error(err))
		return
	}
	s.log.Debug("deaths recorded", zap.Int("rows", len(s.pending)))
	s.pending = s.pending[:0]
}
