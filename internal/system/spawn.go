package system

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/config"
	"github.com/arenasim/arena/internal/core/ecs"
	"github.com/arenasim/arena/internal/core/event"
	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/data"
	"github.com/arenasim/arena/internal/vec"
	"github.com/arenasim/arena/internal/world"
	"go.uber.org/zap"
)

// maxSpawnAttempts bounds the rejection sampling for one enemy position.
const maxSpawnAttempts = 32

// Spawner builds the game's entity archetypes from configuration.
type Spawner struct {
	world *world.State
	cfg   *config.Config
}

func NewSpawner(ws *world.State, cfg *config.Config) *Spawner {
	return &Spawner{world: ws, cfg: cfg}
}

func (sp *Spawner) SpawnPlayer() ecs.EntityID {
	c := sp.cfg.Player
	id := sp.world.SpawnMover(world.Body{
		Type:   component.Player,
		Pos:    vec.New(c.StartX, c.StartY),
		Z:      1,
		Hitbox: world.Rect(c.Width, c.Height),
	}, c.Speed, c.MaxHealth)
	sp.world.Players.Set(id, component.PlayerTag{})
	if c.FireCooldown > 0 {
		sp.world.Weapons.Set(id, component.Weapon{Cooldown: c.FireCooldown})
	}
	sp.world.Player = id
	return id
}

func (sp *Spawner) SpawnEnemy(pos vec.Vec2) ecs.EntityID {
	c := sp.cfg.Enemy
	id := sp.world.SpawnMover(world.Body{
		Type:   component.Enemy,
		Pos:    pos,
		Z:      1,
		Hitbox: world.Rect(c.Width, c.Height),
	}, c.Speed, c.MaxHealth)
	sp.world.Enemies.Set(id, component.EnemyTag{})
	if c.FireCooldown > 0 {
		// First shot only after a full cooldown.
		sp.world.Weapons.Set(id, component.Weapon{Cooldown: c.FireCooldown, Remaining: c.FireCooldown})
	}
	return id
}

// SpawnProjectile fires a projectile of the given type along dir, with its
// hitbox centred on from. dir must be normalised. The hitbox is rotated to
// lie along the dominant axis of travel.
func (sp *Spawner) SpawnProjectile(owner component.MoveType, from, dir vec.Vec2) ecs.EntityID {
	c := sp.cfg.Projectile
	w, h := c.Width, c.Height
	if abs32(dir.X) > abs32(dir.Y) {
		w, h = h, w
	}
	id := sp.world.SpawnMover(world.Body{
		Type:   owner,
		Pos:    from.Sub(vec.New(w/2, h/2)),
		Z:      2,
		Hitbox: world.Rect(w, h),
	}, c.Speed, c.MaxHealth)
	sp.world.Directions.Set(id, component.Direction{V: dir})
	sp.world.Projectiles.Set(id, component.Projectile{Owner: owner})
	return id
}

// SpawnMapEntity creates one static body of map mapID.
func (sp *Spawner) SpawnMapEntity(mapID int, e data.MapEntity) (ecs.EntityID, error) {
	hb, err := e.Hitbox.Hitbox()
	if err != nil {
		return 0, fmt.Errorf("map %d entity at %v: %w", mapID, e.Position, err)
	}
	z := 0
	if e.MoveType == component.Obstacle {
		z = 1
	}
	id := sp.world.Spawn(world.Body{Type: e.MoveType, Pos: e.Pos(), Z: z, Hitbox: hb})
	sp.world.MapTiles.Set(id, component.MapTile{MapID: mapID})
	return id, nil
}

// SpawnSystem serves SpawnEnemies requests. Enemies are placed at random
// inside the play area, away from its edge and farther than the configured
// manhattan distance from the player. Phase 0 (Spawn).
type SpawnSystem struct {
	world   *world.State
	bus     *event.Bus
	spawner *Spawner
	cfg     config.EnemyConfig
	area    config.Rect
	rng     *rand.Rand
	log     *zap.Logger
}

func NewSpawnSystem(ws *world.State, bus *event.Bus, sp *Spawner, cfg *config.Config, rng *rand.Rand, log *zap.Logger) *SpawnSystem {
	return &SpawnSystem{
		world:   ws,
		bus:     bus,
		spawner: sp,
		cfg:     cfg.Enemy,
		area:    cfg.Sim.PlayArea,
		rng:     rng,
		log:     log,
	}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update(_ time.Duration) {
	for _, ev := range s.bus.SpawnEnemies.Events() {
		placed := 0
		for i := 0; i < ev.Count; i++ {
			pos, ok := s.pickPosition()
			if !ok {
				continue
			}
			s.spawner.SpawnEnemy(pos)
			placed++
		}
		if placed < ev.Count {
			s.log.Warn("enemy spawn fell short",
				zap.Int("requested", ev.Count),
				zap.Int("placed", placed))
		}
	}
}

func (s *SpawnSystem) pickPosition() (vec.Vec2, bool) {
	m := s.cfg.SpawnMargin
	minX, maxX := s.area.MinX+m, s.area.MaxX-m
	minY, maxY := s.area.MinY+m, s.area.MaxY-m
	if minX > maxX || minY > maxY {
		return vec.Zero, false
	}
	player, hasPlayer := s.world.PlayerPos()
	for i := 0; i < maxSpawnAttempts; i++ {
		p := vec.New(
			minX+s.rng.Float32()*(maxX-minX),
			minY+s.rng.Float32()*(maxY-minY),
		)
		if !hasPlayer || p.ManhattanTo(player.Pos) > s.cfg.MinPlayerDistance {
			return p, true
		}
	}
	return vec.Zero, false
}

// FireSystem ticks weapon cooldowns and spawns projectiles. The player
// fires along the sampled fire intent, enemies fire at the player.
// Phase 0 (Spawn).
type FireSystem struct {
	world   *world.State
	spawner *Spawner
	shots   []shot
}

type shot struct {
	owner component.MoveType
	from  vec.Vec2
	dir   vec.Vec2
}

func NewFireSystem(ws *world.State, sp *Spawner) *FireSystem {
	return &FireSystem{world: ws, spawner: sp}
}

func (s *FireSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *FireSystem) Update(dt time.Duration) {
	_, hasTarget := s.world.PlayerPos()
	target, _ := s.world.Centre(s.world.Player)
	s.shots = s.shots[:0]
	ecs.Each2(s.world.Weapons, s.world.Transforms, func(id ecs.EntityID, w *component.Weapon, _ *component.Transform) {
		if w.Remaining > dt {
			w.Remaining -= dt
		} else {
			w.Remaining = 0
		}
		if w.Remaining > 0 {
			return
		}
		if h, ok := s.world.Healths.Get(id); ok && h.Current == 0 {
			return
		}
		from, _ := s.world.Centre(id)
		var sh shot
		switch {
		case s.world.Players.Has(id):
			sh = shot{owner: component.PlayerProjectile, from: from, dir: s.world.Intent.Fire.NormalizeOrZero()}
		case s.world.Enemies.Has(id) && hasTarget:
			sh = shot{owner: component.EnemyProjectile, from: from, dir: target.Sub(from).NormalizeOrZero()}
		default:
			return
		}
		if sh.dir.IsZero() {
			return
		}
		w.Remaining = w.Cooldown
		s.shots = append(s.shots, sh)
	})
	// Spawned after the walk: Set may grow the stores being iterated.
	for _, sh := range s.shots {
		s.spawner.SpawnProjectile(sh.owner, sh.from, sh.dir)
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
