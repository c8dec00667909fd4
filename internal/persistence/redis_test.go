package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/schedule-service/internal/config"
)

func TestNewRedis(t *testing.T) {
	srv := miniredis.RunT(t)

	r, err := NewRedis(context.Background(), config.RedisConfig{Addr: srv.Addr()}, zap.NewNop())
	require.NoError(t, err)
	defer r.Close()
	assert.NoError(t, r.Ping(context.Background()))

	addr := srv.Addr()
	srv.Close()
	_, err = NewRedis(context.Background(), config.RedisConfig{Addr: addr}, zap.NewNop())
	assert.Error(t, err)
}

func TestNewPostgresRequiresDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrNoDSN)

	var pg *Postgres
	assert.Error(t, pg.Ping(context.Background()))
	assert.Nil(t, pg.PoolHandle())
}
