// Package testutils provides shared helpers for repository and orchestrator tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-skilltrees/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis server and returns a client
// for it. The server stops when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close() // nolint:errcheck // server is gone anyway
	})

	return client, mr
}
