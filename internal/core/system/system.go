package system

import "time"

// Phase defines execution ordering within a single tick. The order is the
// dependency graph of the pipeline; it never changes at runtime.
type Phase int

const (
	PhaseSpawn            Phase = iota // 0: spawn requests, weapon fire
	PhaseClearVelocity                 // 1: zero every velocity accumulator
	PhaseModifyVelocity                // 2: intent producers add contributions
	PhaseMove                          // 3: project, broad+narrow phase, integrate
	PhaseCollisionEffects              // 4: collisions -> damage/heal requests
	PhaseHealth                        // 5: apply heals, then damage, emit deaths
	PhaseDeath                         // 6: death consumers (despawn, score, level)
	PhasePersist                       // 7: batched writes
	PhaseCleanup                       // 8: destroy queued entities
	phaseCount
)

var phaseNames = [phaseCount]string{
	"spawn", "clear_velocity", "modify_velocity", "move",
	"collision_effects", "health", "death", "persist", "cleanup",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases lists every phase in execution order.
func Phases() []Phase {
	out := make([]Phase, phaseCount)
	for i := range out {
		out[i] = Phase(i)
	}
	return out
}

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
