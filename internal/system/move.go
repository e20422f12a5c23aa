package system

import (
	"fmt"
	"time"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/metrics"
	"github.com/arenasim/arena/internal/physics"
	"github.com/arenasim/arena/internal/world"
	"go.uber.org/zap"
)

// MoveSystem integrates velocities and detects collisions. Phase 3.
//
// Every body is projected to pos + vel*dt, bucketed into the grid at that
// projected position, and tested pairwise. A body left blocked by the
// detector keeps its position for the tick; every other body jumps to its
// projection.
type MoveSystem struct {
	world    *world.State
	bus      *event.Bus
	detector *physics.Detector
	metrics  *metrics.Metrics
	log      *zap.Logger
	bodies   []physics.Body
}

func NewMoveSystem(ws *world.State, bus *event.Bus, cellSize float32, strict bool, m *metrics.Metrics, log *zap.Logger) *MoveSystem {
	s := &MoveSystem{world: ws, bus: bus, metrics: m, log: log}
	s.detector = physics.NewDetector(cellSize, func(err error, a, b *physics.Body) {
		if strict {
			panic(fmt.Errorf("collision invariant: %w", err))
		}
		fields := []zap.Field{zap.Error(err), zap.Uint64("entity", uint64(a.ID)), zap.Stringer("type", a.Type)}
		if b != nil {
			fields = append(fields, zap.Uint64("other", uint64(b.ID)), zap.Stringer("other_type", b.Type))
		}
		log.Error("collision invariant violated", fields...)
	})
	return s
}

func (s *MoveSystem) Phase() coresys.Phase { return coresys.PhaseMove }

func (s *MoveSystem) Update(dt time.Duration) {
	secs := float32(dt.Seconds())

	s.bodies = s.bodies[:0]
	ecs.Each3(s.world.Transforms, s.world.Hitboxes, s.world.MoveTypes,
		func(id ecs.EntityID, tf *component.Transform, hb *component.Hitbox, mt *component.MoveType) {
			next := tf.Pos
			if v, ok := s.world.Velocities.Get(id); ok {
				next = next.Add(v.V.Scale(secs))
			}
			s.bodies = append(s.bodies, physics.Body{ID: id, Type: *mt, Hitbox: *hb, Next: next})
		})

	st := s.detector.Detect(s.bodies, s.emit)

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Type == component.Floor || b.Blocked {
			continue
		}
		if tf, ok := s.world.Transforms.Get(b.ID); ok {
			tf.Pos = b.Next
		}
	}

	if s.metrics != nil {
		for p, n := range st.Contacts {
			s.metrics.AddCollisions(physics.Policy(p).String(), n)
		}
		s.metrics.AddViolations(st.Violations)
	}
}

func (s *MoveSystem) emit(a, b *physics.Body, _ physics.Policy) {
	s.bus.Collisions.Emit(event.Collision{Subject: a.ID, SubjectType: a.Type, Other: b.ID, OtherType: b.Type})
	s.bus.Collisions.Emit(event.Collision{Subject: b.ID, SubjectType: b.Type, Other: a.ID, OtherType: a.Type})
}
