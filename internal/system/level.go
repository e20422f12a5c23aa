package system

import (
	"time"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/data"
	"github.com/arenasim/arena/internal/world"
	"go.uber.org/zap"
)

// LevelSystem drives level progression. A level is cleared once no enemy
// is alive and no spawn request is pending; clearing heals the player,
// tears down the level's map and starts the next one. Clearing the last
// level wins the run. Phase 6 (Death), registered after DespawnSystem.
type LevelSystem struct {
	world    *world.State
	bus      *event.Bus
	spawner  *Spawner
	maps     *data.MapStorage
	rules    LevelRules
	maxLevel int
	log      *zap.Logger
	tiles    []ecs.EntityID
}

func NewLevelSystem(ws *world.State, bus *event.Bus, sp *Spawner, maps *data.MapStorage, rules LevelRules, maxLevel int, log *zap.Logger) *LevelSystem {
	return &LevelSystem{
		world:    ws,
		bus:      bus,
		spawner:  sp,
		maps:     maps,
		rules:    rules,
		maxLevel: maxLevel,
		log:      log,
	}
}

func (s *LevelSystem) Phase() coresys.Phase { return coresys.PhaseDeath }

// Start spawns the player and enters the current level. Call once before
// the first tick.
func (s *LevelSystem) Start() {
	s.spawner.SpawnPlayer()
	s.enter(s.world.Level)
}

func (s *LevelSystem) Update(_ time.Duration) {
	if s.world.Outcome != world.Running {
		return
	}
	if s.world.LiveEnemies() > 0 || s.bus.SpawnEnemies.Len() > 0 {
		return
	}

	cleared := s.world.Level
	if heal := s.rules.LevelHeal(cleared); heal > 0 {
		s.bus.Heals.Emit(event.Heal{Entity: s.world.Player, Amount: heal})
	}
	s.teardown(cleared)

	if cleared >= s.maxLevel {
		s.world.Outcome = world.Won
		s.log.Info("run won", zap.Int("level", cleared), zap.Int64("tick", s.world.Tick))
		return
	}
	s.world.Level = cleared + 1
	s.log.Info("level cleared", zap.Int("level", cleared), zap.Int("next", s.world.Level))
	s.enter(s.world.Level)
}

// enter loads the level's map and requests its enemies. A map that fails to
// load is reported and the level is played without it.
func (s *LevelSystem) enter(level int) {
	if s.maps != nil {
		def, err := s.maps.Load(level)
		if err != nil {
			s.log.Warn("map unavailable", zap.Int("level", level), zap.Error(err))
		} else {
			for _, e := range def.Entities {
				if _, err := s.spawner.SpawnMapEntity(level, e); err != nil {
					s.log.Warn("skip map entity", zap.Int("level", level), zap.Error(err))
				}
			}
		}
	}
	n := s.rules.EnemyCount(level)
	if n > 0 {
		s.bus.SpawnEnemies.Emit(event.SpawnEnemies{Count: n})
	}
	s.log.Info("level started", zap.Int("level", level), zap.Int("enemies", n))
}

func (s *LevelSystem) teardown(level int) {
	s.tiles = s.tiles[:0]
	s.world.MapTiles.Each(func(id ecs.EntityID, t *component.MapTile) {
		if t.MapID == level {
			s.tiles = append(s.tiles, id)
		}
	})
	for _, id := range s.tiles {
		s.world.Despawn(id)
	}
	if s.maps != nil {
		s.maps.Unload(level)
	}
}
