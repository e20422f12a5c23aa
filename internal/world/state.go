package world

import (
	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/vec"
)

// Outcome is the run's terminal state.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// State is the simulation's entity storage: one dense store per component,
// all registered with the ECS registry so destroy clears every record.
// Accessed only from the tick goroutine, so there are no locks.
type State struct {
	ECS *ecs.World

	Transforms  *ecs.Store[component.Transform]
	Velocities  *ecs.Store[component.Velocity]
	Hitboxes    *ecs.Store[component.Hitbox]
	MoveTypes   *ecs.Store[component.MoveType]
	Healths     *ecs.Store[component.Health]
	Speeds      *ecs.Store[component.Speed]
	Directions  *ecs.Store[component.Direction]
	Players     *ecs.Store[component.PlayerTag]
	Enemies     *ecs.Store[component.EnemyTag]
	Projectiles *ecs.Store[component.Projectile]
	Weapons     *ecs.Store[component.Weapon]
	MapTiles    *ecs.Store[component.MapTile]

	Player  ecs.EntityID
	Intent  Intent
	Level   int
	Tick    int64
	Outcome Outcome
	Score   Score
}

// Intent is the player's input for the current tick. Move and Fire are
// directions; zero means none.
type Intent struct {
	Move vec.Vec2
	Fire vec.Vec2
}

// Score counts deaths per move type over the run.
type Score struct {
	Kills [component.MoveTypeCount]int
}

func NewState() *State {
	w := ecs.NewWorld()
	r := w.Registry()
	return &State{
		ECS:         w,
		Transforms:  ecs.NewRegisteredStore[component.Transform](r),
		Velocities:  ecs.NewRegisteredStore[component.Velocity](r),
		Hitboxes:    ecs.NewRegisteredStore[component.Hitbox](r),
		MoveTypes:   ecs.NewRegisteredStore[component.MoveType](r),
		Healths:     ecs.NewRegisteredStore[component.Health](r),
		Speeds:      ecs.NewRegisteredStore[component.Speed](r),
		Directions:  ecs.NewRegisteredStore[component.Direction](r),
		Players:     ecs.NewRegisteredStore[component.PlayerTag](r),
		Enemies:     ecs.NewRegisteredStore[component.EnemyTag](r),
		Projectiles: ecs.NewRegisteredStore[component.Projectile](r),
		Weapons:     ecs.NewRegisteredStore[component.Weapon](r),
		MapTiles:    ecs.NewRegisteredStore[component.MapTile](r),
		Level:       1,
	}
}

// PlayerPos returns the player's position, if the player is alive.
func (s *State) PlayerPos() (component.Transform, bool) {
	if !s.Players.Has(s.Player) {
		return component.Transform{}, false
	}
	tf, ok := s.Transforms.Get(s.Player)
	if !ok {
		return component.Transform{}, false
	}
	return *tf, true
}

// LiveEnemies counts enemies that are not dying or queued for removal.
func (s *State) LiveEnemies() int {
	n := 0
	s.Enemies.Each(func(id ecs.EntityID, _ *component.EnemyTag) {
		if s.ECS.PendingDestruction(id) {
			return
		}
		if h, ok := s.Healths.Get(id); ok && h.Current == 0 {
			return
		}
		n++
	})
	return n
}

// Centre returns the midpoint of an entity's hitbox.
func (s *State) Centre(id ecs.EntityID) (vec.Vec2, bool) {
	tf, ok := s.Transforms.Get(id)
	if !ok {
		return vec.Zero, false
	}
	if hb, ok := s.Hitboxes.Get(id); ok {
		return tf.Pos.Add(hb.Size.Scale(0.5)), true
	}
	return tf.Pos, true
}
