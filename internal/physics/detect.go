package physics

import (
	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/vec"
)

// Body is one participant of the move phase. Next is the projected position
// for this tick; Blocked is set by the detector and never cleared within a
// tick.
type Body struct {
	ID      ecs.EntityID
	Type    component.MoveType
	Hitbox  component.Hitbox
	Next    vec.Vec2
	Blocked bool
}

// ContactFunc receives each reported overlap once, as the unordered pair
// (a, b). Callers emit the two directional events.
type ContactFunc func(a, b *Body, p Policy)

// ViolationFunc receives invariant violations. It may panic.
type ViolationFunc func(err error, a, b *Body)

// Stats summarises one Detect call.
type Stats struct {
	Bodies     int
	Candidates int
	Tests      int
	Contacts   [3]int // indexed by Policy
	Violations int
}

// Detector runs the broad and narrow phase over a set of bodies.
type Detector struct {
	grid      *Grid
	violation ViolationFunc
}

func NewDetector(cellSize float32, onViolation ViolationFunc) *Detector {
	return &Detector{grid: NewGrid(cellSize), violation: onViolation}
}

// Detect rebuilds the grid from bodies, tests every candidate pair and marks
// blocked bodies in place. Floor bodies are never inserted. A body that
// cannot be indexed is reported and left blocked.
func (d *Detector) Detect(bodies []Body, onContact ContactFunc) Stats {
	var st Stats
	d.grid.Reset()
	for i := range bodies {
		b := &bodies[i]
		if b.Type == component.Floor {
			continue
		}
		if err := d.grid.Insert(i, b.Next, Extent(b.Hitbox)); err != nil {
			// Unindexed bodies could tunnel through anything; hold them still.
			b.Blocked = true
			st.Violations++
			d.report(err, b, nil)
			continue
		}
		st.Bodies++
	}

	d.grid.EachPair(func(i, j int) {
		st.Candidates++
		a, b := &bodies[i], &bodies[j]
		p := PolicyFor(a.Type, b.Type)
		if p == PolicyIgnore {
			return
		}
		st.Tests++
		hit, err := Overlap(a.Hitbox, a.Next, b.Hitbox, b.Next)
		if err != nil {
			st.Violations++
			d.report(err, a, b)
			return
		}
		if !hit {
			return
		}
		if p == PolicyBlock {
			a.Blocked = true
			b.Blocked = true
		}
		st.Contacts[p]++
		onContact(a, b, p)
	})
	return st
}

func (d *Detector) report(err error, a, b *Body) {
	if d.violation != nil {
		d.violation(err, a, b)
	}
}
