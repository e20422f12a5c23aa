package persist

import (
	"context"
	"testing"

	"github.com/arenasim/arena/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewDBRequiresDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DatabaseConfig{Enabled: true}, zap.NewNop())
	assert.ErrorIs(t, err, ErrNoDSN)
}

func TestNewDBRejectsBadDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DatabaseConfig{DSN: "postgres://%zz"}, zap.NewNop())
	assert.Error(t, err)
}
