package persist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRow is one simulation run.
type RunRow struct {
	ID        uuid.UUID
	StartedAt time.Time
	EndedAt   *time.Time
	Level     int
	Outcome   string
	Ticks     int64
}

// DeathRow is one entity death observed during a run.
type DeathRow struct {
	Tick     int64
	Level    int
	MoveType string
	X        float32
	Y        float32
}

// RunStore is what the persist phase writes to.
type RunStore interface {
	SaveRun(ctx context.Context, run RunRow) error
	RecordDeaths(ctx context.Context, runID uuid.UUID, deaths []DeathRow) error
}

type RunRepo struct {
	db *DB
}

func NewRunRepo(db *DB) *RunRepo {
	return &RunRepo{db: db}
}

// SaveRun upserts the run summary.
func (r *RunRepo) SaveRun(ctx context.Context, run RunRow) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO runs (id, started_at, ended_at, level, outcome, ticks)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		   ended_at = EXCLUDED.ended_at, level = EXCLUDED.level,
		   outcome = EXCLUDED.outcome, ticks = EXCLUDED.ticks`,
		run.ID, run.StartedAt, run.EndedAt, run.Level, run.Outcome, run.Ticks,
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

// RecordDeaths writes a batch of deaths in a single transaction.
func (r *RunRepo) RecordDeaths(ctx context.Context, runID uuid.UUID, deaths []DeathRow) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("deaths begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, d := range deaths {
		if _, err := tx.Exec(ctx,
			`INSERT INTO deaths (run_id, tick, level, move_type, pos_x, pos_y)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			runID, d.Tick, d.Level, d.MoveType, d.X, d.Y,
		); err != nil {
			return fmt.Errorf("deaths insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// MemoryStore keeps runs in memory. Used when the database is disabled and
// in tests.
type MemoryStore struct {
	Runs   map[uuid.UUID]RunRow
	Deaths map[uuid.UUID][]DeathRow
	// Fail, when set, is returned by every call.
	Fail error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Runs:   make(map[uuid.UUID]RunRow),
		Deaths: make(map[uuid.UUID][]DeathRow),
	}
}

func (m *MemoryStore) SaveRun(_ context.Context, run RunRow) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.Runs[run.ID] = run
	return nil
}

func (m *MemoryStore) RecordDeaths(_ context.Context, runID uuid.UUID, deaths []DeathRow) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.Deaths[runID] = append(m.Deaths[runID], deaths...)
	return nil
}
