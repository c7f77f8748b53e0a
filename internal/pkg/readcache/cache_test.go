package readcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
)

func newCache(t *testing.T, size int, ttl time.Duration) (*Cache[string], *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	c, err := New[string](size, ttl, clk)
	require.NoError(t, err)
	return c, clk
}

func TestCache_Expiry(t *testing.T) {
	c, clk := newCache(t, 10, time.Minute)
	c.Add("k", "v")

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	clk.Advance(time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newCache(t, 2, time.Hour)
	c.Add("a", "1")
	c.Add("b", "2")
	_, _ = c.Get("a")
	c.Add("c", "3")

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestCache_InvalidSize(t *testing.T) {
	_, err := New[string](0, time.Minute, clock.NewRealClock())
	assert.Error(t, err)
}

func TestCache_GetOrLoad(t *testing.T) {
	t.Run("loads once then serves from cache", func(t *testing.T) {
		c, _ := newCache(t, 10, time.Minute)
		var calls int32
		load := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			return "loaded", nil
		}

		for i := 0; i < 3; i++ {
			v, err := c.GetOrLoad(context.Background(), "k", load)
			require.NoError(t, err)
			assert.Equal(t, "loaded", v)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("concurrent callers share one load", func(t *testing.T) {
		c, _ := newCache(t, 10, time.Minute)
		var calls int32
		release := make(chan struct{})
		load := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return "shared", nil
		}

		var wg sync.WaitGroup
		results := make([]string, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, err := c.GetOrLoad(context.Background(), "k", load)
				assert.NoError(t, err)
				results[i] = v
			}(i)
		}
		assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
		time.Sleep(10 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, r := range results {
			assert.Equal(t, "shared", r)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c, _ := newCache(t, 10, time.Minute)
		_, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
			return "", errors.New("down")
		})
		require.Error(t, err)

		v, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
			return "up", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "up", v)
	})

	t.Run("remove during load discards the loaded value", func(t *testing.T) {
		c, _ := newCache(t, 10, time.Minute)
		v, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
			c.Remove("k")
			return "stale", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "stale", v)

		_, ok := c.Get("k")
		assert.False(t, ok)
	})
}
