package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sahaj/pkg/adapters/redis"
	"github.com/aretw0/sahaj/pkg/domain"
	"github.com/aretw0/sahaj/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunSessionStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	sess := domain.NewSession("session-ttl")
	sess.State = domain.StateCheckAadhaarLink
	sess.UserData["pan"] = "ABCDE1234F"

	require.NoError(t, store.Save(ctx, sess.ID, sess))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, sessions, sess.ID)

	// Expire the session key inside miniredis.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Index cleanup is lazy and scored with time.Now(), so wait past the
	// TTL in wall-clock time before asserting List.
	time.Sleep(1200 * time.Millisecond)

	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "my-session", domain.NewSession("my-session")))

	assert.True(t, mr.Exists("custom:app:my-session"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, list, "my-session")
}

func TestRedisStore_RoundTripPreservesSession(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ctx := context.Background()

	sess := domain.NewSession("round-trip")
	sess.State = domain.StateResidentialStatus
	sess.UserData["pan"] = "ABCDE1234F"
	sess.UserData["tax_regime"] = "new"
	sess.Context["reason"] = "house_property"

	require.NoError(t, store.Save(ctx, sess.ID, sess))

	got, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.State, got.State)
	assert.Equal(t, sess.UserData, got.UserData)
	assert.Equal(t, sess.Context, got.Context)
}
