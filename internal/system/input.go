package system

import (
	"time"

	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/arenasim/arena/internal/world"
)

// IntentSource supplies the player's intent once per tick. Keyboard
// mapping, replays and bots live behind it.
type IntentSource interface {
	PlayerIntent() world.Intent
}

// InputSystem samples the intent source into world state so every later
// phase of the tick sees the same input. Phase 0 (Spawn), registered first.
type InputSystem struct {
	world  *world.State
	source IntentSource
}

func NewInputSystem(ws *world.State, source IntentSource) *InputSystem {
	return &InputSystem{world: ws, source: source}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *InputSystem) Update(_ time.Duration) {
	if s.source == nil {
		s.world.Intent = world.Intent{}
		return
	}
	s.world.Intent = s.source.PlayerIntent()
}
