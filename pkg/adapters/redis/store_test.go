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
	"github.com/wanderkit/packlist/pkg/domain"
	"github.com/wanderkit/packlist/pkg/ports/tests"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStore_Contract(t *testing.T) {
	store := redisadapter.NewFromClient(newTestClient(t))
	tests.SessionStoreContract(t, store)
}

func TestStore_TTLExpiresSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisadapter.NewFromClient(client, redisadapter.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewSession("alice")))

	_, err := store.Load(ctx, "alice")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_ListPrunesExpiredIndexEntries(t *testing.T) {
	client := newTestClient(t)
	store := redisadapter.NewFromClient(client, redisadapter.WithPrefix("test:session:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewSession("alice")))

	// A stale index entry whose expiry score has already passed.
	stale := backend.Z{Score: float64(time.Now().Add(-time.Hour).Unix()), Member: "ghost"}
	require.NoError(t, client.ZAdd(ctx, "test:session:index", stale).Err())

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, ids)
}

func TestStore_PrefixIsolation(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	a := redisadapter.NewFromClient(client, redisadapter.WithPrefix("a:"))
	b := redisadapter.NewFromClient(client, redisadapter.WithPrefix("b:"))

	require.NoError(t, a.Save(ctx, domain.NewSession("alice")))

	_, err := b.Load(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	ids, err := b.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
