package persist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id := uuid.New()

	require.NoError(t, m.SaveRun(ctx, RunRow{ID: id, StartedAt: time.Now(), Level: 1, Outcome: "running"}))
	require.NoError(t, m.SaveRun(ctx, RunRow{ID: id, Level: 2, Outcome: "won"}))
	assert.Len(t, m.Runs, 1)
	assert.Equal(t, "won", m.Runs[id].Outcome)

	require.NoError(t, m.RecordDeaths(ctx, id, []DeathRow{{Tick: 1, MoveType: "Enemy"}}))
	require.NoError(t, m.RecordDeaths(ctx, id, []DeathRow{{Tick: 2, MoveType: "Player"}}))
	assert.Len(t, m.Deaths[id], 2)

	m.Fail = errors.New("down")
	assert.Error(t, m.SaveRun(ctx, RunRow{ID: id}))
	assert.Error(t, m.RecordDeaths(ctx, id, nil))
}

func TestStoresImplementRunStore(t *testing.T) {
	var _ RunStore = (*RunRepo)(nil)
	var _ RunStore = (*MemoryStore)(nil)
}
