package system

import (
	"time"

	coresys "github.com/arenasim/arena/internal/core/system"
)

// Pipeline is the fully wired tick: every system registered in phase
// order, and the event bus dropping each queue after its consumer phase.
type Pipeline struct {
	Runner  *coresys.Runner
	Level   *LevelSystem
	Persist *PersistSystem // nil without a store
	deps    Deps
}

func NewPipeline(d Deps) *Pipeline {
	r := coresys.NewRunner()
	r.AfterPhase(d.Bus.EndPhase)

	sp := NewSpawner(d.World, d.Config)
	p := &Pipeline{Runner: r, deps: d}

	var rec DeathRecorder
	if d.Store != nil {
		p.Persist = NewPersistSystem(d.World, d.Store, d.RunID, d.Log, d.Config.Database.FlushEvery)
		rec = p.Persist
	}
	p.Level = NewLevelSystem(d.World, d.Bus, sp, d.Maps, d.Rules, d.Config.Level.MaxLevel, d.Log)

	// Phase 0: Spawn
	r.Register(NewInputSystem(d.World, d.Intents))
	r.Register(NewSpawnSystem(d.World, d.Bus, sp, d.Config, d.Rand, d.Log))
	r.Register(NewFireSystem(d.World, sp))
	// Phase 1: ClearVelocity
	r.Register(NewClearVelocitySystem(d.World))
	// Phase 2: ModifyVelocity
	r.Register(NewPlayerControlSystem(d.World))
	r.Register(NewEnemyChaseSystem(d.World))
	r.Register(NewProjectileDriveSystem(d.World))
	// Phase 3: Move
	r.Register(NewMoveSystem(d.World, d.Bus, d.Config.Sim.CellSize, d.Config.Sim.Strict, d.Metrics, d.Log))
	// Phase 4: CollisionEffects
	r.Register(NewContactDamageSystem(d.World, d.Bus, d.Rules))
	r.Register(NewBoundsSystem(d.World, d.Bus, d.Config.Sim.PlayArea))
	// Phase 5: Health
	r.Register(NewHealthSystem(d.World, d.Bus))
	// Phase 6: Death
	r.Register(NewScoreSystem(d.World, d.Bus, d.Metrics, rec))
	r.Register(NewDespawnSystem(d.World, d.Bus, d.Log))
	r.Register(p.Level)
	// Phase 7: Persist
	if p.Persist != nil {
		r.Register(p.Persist)
	}
	// Phase 8: Cleanup
	r.Register(NewCleanupSystem(d.World, d.Metrics))

	return p
}

// Start spawns the player and the first level.
func (p *Pipeline) Start() {
	p.Level.Start()
}

// Step runs one tick.
func (p *Pipeline) Step(dt time.Duration) {
	start := time.Now()
	p.Runner.Tick(dt)
	if p.deps.Metrics != nil {
		p.deps.Metrics.ObserveTick(time.Since(start))
	}
}

// Close flushes pending persistence.
func (p *Pipeline) Close() {
	if p.Persist != nil {
		p.Persist.Close()
	}
}
