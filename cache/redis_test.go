package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisFixture(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedis(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisSetGet(t *testing.T) {
	store, _ := newRedisFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, hit, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("v"), got)
}

func TestRedisMissIsNotAnError(t *testing.T) {
	store, _ := newRedisFixture(t)

	_, hit, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisTTLExpiry(t *testing.T) {
	store, mr := newRedisFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 5*time.Minute))
	mr.FastForward(6 * time.Minute)

	_, hit, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisReset(t *testing.T) {
	store, _ := newRedisFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, store.Reset(ctx))

	_, hit, _ := store.Get(ctx, "a")
	assert.False(t, hit)
}
