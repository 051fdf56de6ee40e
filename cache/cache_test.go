package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))

	got, hit, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory()

	_, hit, err := m.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	current := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 5*time.Minute))

	current = current.Add(4 * time.Minute)
	_, hit, _ := m.Get(ctx, "k")
	assert.True(t, hit, "entry within TTL must be served")

	current = current.Add(2 * time.Minute)
	_, hit, _ = m.Get(ctx, "k")
	assert.False(t, hit, "entry past TTL must be dropped")
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, m.Reset(ctx))

	_, hit, _ := m.Get(ctx, "a")
	assert.False(t, hit)
	_, hit, _ = m.Get(ctx, "b")
	assert.False(t, hit)
}
