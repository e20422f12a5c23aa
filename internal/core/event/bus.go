package event

import coresys "github.com/arenasim/arena/internal/core/system"

// Bus holds the per-tick message buffers. It is owned by the tick driver and
// passed by reference to every system. Each queue is dropped when its
// consuming phase ends; events emitted after that point wait for the same
// phase of the next tick.
type Bus struct {
	Collisions   Queue[Collision]
	Damage       Queue[TakeDamage]
	Heals        Queue[Heal]
	Deaths       Queue[Death]
	SpawnEnemies Queue[SpawnEnemies]
}

func NewBus() *Bus {
	return &Bus{}
}

// EndPhase drops the queues consumed during phase p. Wire it with
// Runner.AfterPhase.
func (b *Bus) EndPhase(p coresys.Phase) {
	switch p {
	case coresys.PhaseSpawn:
		b.SpawnEnemies.Drop()
	case coresys.PhaseCollisionEffects:
		b.Collisions.Drop()
	case coresys.PhaseHealth:
		b.Heals.Drop()
		b.Damage.Drop()
	case coresys.PhaseDeath:
		b.Deaths.Drop()
	}
}
