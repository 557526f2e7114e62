package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/redis"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	t.Run("host and port", func(t *testing.T) {
		client, err := redis.NewClient(mr.Addr(), nil)
		require.NoError(t, err)
		assert.NoError(t, redis.Ping(ctx, client))
	})

	t.Run("url", func(t *testing.T) {
		client, err := redis.NewClient("redis://"+mr.Addr()+"/0", &redis.Options{PoolSize: 2})
		require.NoError(t, err)
		assert.NoError(t, redis.Ping(ctx, client))
	})

	t.Run("empty endpoint", func(t *testing.T) {
		_, err := redis.NewClient("", nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := redis.NewClient("redis://"+mr.Addr()+"/notadb", nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestPingUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{MaxRetries: -1})
	require.NoError(t, err)
	mr.Close()

	err = redis.Ping(context.Background(), client)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestNewClusterClientRequiresEndpoints(t *testing.T) {
	_, err := redis.NewClusterClient(nil, nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
