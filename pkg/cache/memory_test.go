package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

func TestMemoryCacheRoundTripsStructs(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	in := []point{{Date: "2024-01-01", Rate: 172.3}}
	require.NoError(t, mc.Set(ctx, "rate:history:7", in, time.Minute))

	var out []point
	require.NoError(t, mc.Get(ctx, "rate:history:7", &out))
	assert.Equal(t, in, out)
}

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mc := NewMemoryCache(WithMemoryClock(func() time.Time { return now }))
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", "v", time.Second))
	now = now.Add(2 * time.Second)

	var s string
	assert.True(t, errors.Is(mc.Get(ctx, "k", &s), ErrCacheMiss))
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mc := NewMemoryCache(
		WithMemoryMaxSize(2),
		WithMemoryClock(func() time.Time { now = now.Add(time.Millisecond); return now }),
	)
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, mc.Set(ctx, "b", 2, time.Minute))
	var n int
	require.NoError(t, mc.Get(ctx, "a", &n))
	require.NoError(t, mc.Set(ctx, "c", 3, time.Minute))

	assert.Equal(t, 2, mc.Len())
	assert.ErrorIs(t, mc.Get(ctx, "b", &n), ErrCacheMiss)
	require.NoError(t, mc.Get(ctx, "a", &n))
	assert.Equal(t, 1, n)
}

func TestMemoryCacheDeleteByPattern(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "rate:history:7", 1, 0))
	require.NoError(t, mc.Set(ctx, "rate:suggestion", 2, 0))
	require.NoError(t, mc.Set(ctx, "poll:summary", 3, 0))

	require.NoError(t, mc.DeleteByPattern(ctx, BuildPattern("rate")))
	assert.Equal(t, 1, mc.Len())
}

func TestGetOrLoadCachesResult(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	calls := 0
	load := func() (string, error) {
		calls++
		return "good", nil
	}

	for i := 0; i < 3; i++ {
		v, err := GetOrLoad(ctx, mc, "rate:suggestion", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, "good", v)
	}
	assert.Equal(t, 1, calls)
}

func TestGetOrLoadWithNopAlwaysLoads(t *testing.T) {
	calls := 0
	for i := 0; i < 2; i++ {
		_, err := GetOrLoad(context.Background(), Nop{}, "k", time.Minute, func() (int, error) {
			calls++
			return 1, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}
