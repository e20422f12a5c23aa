package system

import (
	"math/rand"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/config"
	"github.com/arenasim/arena/internal/core/event"
	"github.com/arenasim/arena/internal/data"
	"github.com/arenasim/arena/internal/metrics"
	"github.com/arenasim/arena/internal/persist"
	"github.com/arenasim/arena/internal/world"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DamageRules maps a directional collision to the damage its subject takes.
type DamageRules interface {
	ContactDamage(subject, other component.MoveType) uint
}

// LevelRules supplies per-level tuning.
type LevelRules interface {
	EnemyCount(level int) int
	LevelHeal(level int) uint
}

// Rules is the full rule set a pipeline runs with. *scripting.Engine
// implements it.
type Rules interface {
	DamageRules
	LevelRules
}

// Deps bundles everything the systems share. Optional fields may be nil:
// Metrics, Intents and Store.
type Deps struct {
	World   *world.State
	Bus     *event.Bus
	Config  *config.Config
	Rules   Rules
	Maps    *data.MapStorage
	Metrics *metrics.Metrics
	Log     *zap.Logger
	Rand    *rand.Rand
	Intents IntentSource
	Store   persist.RunStore
	RunID   uuid.UUID
}
