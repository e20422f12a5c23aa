package system

import (
	"sort"
	"time"
)

// Runner executes systems in phase order each tick. Systems sharing a phase
// run in registration order.
type Runner struct {
	systems    []System
	sorted     bool
	afterPhase []func(Phase)
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 16),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// AfterPhase registers a hook called once every phase finishes, including
// phases with no registered systems. The event bus uses it to drop queues
// whose consumers have run.
func (r *Runner) AfterPhase(fn func(Phase)) {
	r.afterPhase = append(r.afterPhase, fn)
}

func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	i := 0
	for p := Phase(0); p < phaseCount; p++ {
		for ; i < len(r.systems) && r.systems[i].Phase() == p; i++ {
			r.systems[i].Update(dt)
		}
		for _, fn := range r.afterPhase {
			fn(p)
		}
	}
}

// TickPhase runs only the systems of one phase, followed by its hooks.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(dt)
		}
	}
	for _, fn := range r.afterPhase {
		fn(phase)
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
