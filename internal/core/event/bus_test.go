package event

import (
	"testing"

	coresys "github.com/arenasim/arena/internal/core/system"
	"github.com/stretchr/testify/assert"
)

func TestQueueKeepsEmissionOrder(t *testing.T) {
	var q Queue[TakeDamage]
	q.Emit(TakeDamage{Entity: 1, Amount: 5})
	q.Emit(TakeDamage{Entity: 1, Amount: 3})

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []TakeDamage{{Entity: 1, Amount: 5}, {Entity: 1, Amount: 3}}, q.Events())

	q.Drop()
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Events())
}

func TestBusDropsAfterConsumerPhase(t *testing.T) {
	b := NewBus()
	b.Collisions.Emit(Collision{Subject: 1, Other: 2})
	b.Damage.Emit(TakeDamage{Entity: 1, Amount: 1})
	b.Heals.Emit(Heal{Entity: 1, Amount: 1})
	b.Deaths.Emit(Death{Entity: 1})
	b.SpawnEnemies.Emit(SpawnEnemies{Count: 3})

	b.EndPhase(coresys.PhaseMove)
	assert.Equal(t, 1, b.Collisions.Len(), "collisions live until collision effects end")

	b.EndPhase(coresys.PhaseSpawn)
	assert.Equal(t, 0, b.SpawnEnemies.Len())

	b.EndPhase(coresys.PhaseCollisionEffects)
	assert.Equal(t, 0, b.Collisions.Len())
	assert.Equal(t, 1, b.Damage.Len())

	b.EndPhase(coresys.PhaseHealth)
	assert.Equal(t, 0, b.Damage.Len())
	assert.Equal(t, 0, b.Heals.Len())
	assert.Equal(t, 1, b.Deaths.Len())

	b.EndPhase(coresys.PhaseDeath)
	assert.Equal(t, 0, b.Deaths.Len())
}

func TestLateHealSurvivesToNextHealthPhase(t *testing.T) {
	b := NewBus()
	for _, p := range coresys.Phases() {
		if p == coresys.PhaseDeath {
			b.Heals.Emit(Heal{Entity: 1, Amount: 20})
		}
		b.EndPhase(p)
	}
	assert.Equal(t, 1, b.Heals.Len())
}
