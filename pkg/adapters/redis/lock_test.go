package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "github.com/wanderkit/packlist/pkg/adapters/redis"
)

func TestLocker_MutualExclusion(t *testing.T) {
	client := newTestClient(t)
	locker := redisadapter.NewLocker(client, "test:")
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "alice", time.Minute)
	require.NoError(t, err)

	// A second holder cannot acquire the same key while it is held.
	shortCtx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(shortCtx, "alice", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// A different key is independent.
	unlockOther, err := locker.Lock(ctx, "bob", time.Minute)
	require.NoError(t, err)
	require.NoError(t, unlockOther(ctx))

	require.NoError(t, unlock(ctx))

	// Released: immediate re-acquisition succeeds.
	unlock2, err := locker.Lock(ctx, "alice", time.Minute)
	require.NoError(t, err)
	require.NoError(t, unlock2(ctx))
}

func TestLocker_StaleUnlockKeepsNewHolder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	locker := redisadapter.NewLocker(client, "test:")
	ctx := context.Background()

	staleUnlock, err := locker.Lock(ctx, "alice", 50*time.Millisecond)
	require.NoError(t, err)

	// The first holder's lease expires and someone else takes the lock.
	mr.FastForward(time.Second)
	unlock, err := locker.Lock(ctx, "alice", time.Minute)
	require.NoError(t, err)

	// The stale release must not free the new holder's lock.
	require.NoError(t, staleUnlock(ctx))
	held, err := client.Exists(ctx, "test:lock:alice").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), held)

	require.NoError(t, unlock(ctx))
}
