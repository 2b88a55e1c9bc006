package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sahaj/pkg/adapters/redis"
	backend "github.com/redis/go-redis/v9"
)

func TestLocker_AcquireAndRelease(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	locker := redis.NewLocker(client, "sahaj:")
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session-1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists("sahaj:lock:session-1"))

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("sahaj:lock:session-1"))
}

func TestLocker_BlocksSecondHolder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	locker := redis.NewLocker(client, "sahaj:")
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session-1", 5*time.Second)
	require.NoError(t, err)
	defer func() { _ = unlock(ctx) }()

	// A second holder must not acquire while the lock is held.
	shortCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(shortCtx, "session-1", 5*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
