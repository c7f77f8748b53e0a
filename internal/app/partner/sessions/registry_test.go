package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRegistry(ttl time.Duration) (*Registry, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	return NewRegistry(ttl, clk, zap.NewNop()), clk
}

func TestRegistry_OpenGetClose(t *testing.T) {
	r, _ := newRegistry(time.Minute)

	a := r.Open("p-1", "u-1")
	b := r.Open("p-1", "u-2")
	require.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Store, b.Store)
	assert.Equal(t, 2, r.Len())

	got, err := r.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, r.Close(a.ID))
	_, err = r.Get(a.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, r.Close(a.ID), domain.ErrSessionNotFound)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	t.Run("closes idle sessions only", func(t *testing.T) {
		r, clk := newRegistry(10 * time.Minute)
		idle := r.Open("p-1", "u-1")
		clk.Advance(8 * time.Minute)
		active := r.Open("p-2", "u-1")
		clk.Advance(5 * time.Minute)

		assert.Equal(t, 1, r.Sweep(clk.Now()))
		_, err := r.Get(idle.ID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		_, err = r.Get(active.ID)
		assert.NoError(t, err)
	})

	t.Run("get keeps a session alive", func(t *testing.T) {
		r, clk := newRegistry(10 * time.Minute)
		s := r.Open("p-1", "u-1")
		clk.Advance(9 * time.Minute)
		_, err := r.Get(s.ID)
		require.NoError(t, err)
		clk.Advance(9 * time.Minute)

		assert.Zero(t, r.Sweep(clk.Now()))
	})

	t.Run("keeps sessions with a save in flight", func(t *testing.T) {
		r, clk := newRegistry(time.Minute)
		s := r.Open("p-1", "u-1")
		s.Store.Initialize(domain.NewPartnerProfile("p-1"))
		require.NoError(t, s.Store.UpdateField(domain.FieldGoals, []domain.Goal{domain.GoalCasual}))
		_, ok, err := s.Store.BeginSave()
		require.NoError(t, err)
		require.True(t, ok)

		clk.Advance(time.Hour)
		assert.Zero(t, r.Sweep(clk.Now()))
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		r, clk := newRegistry(0)
		r.Open("p-1", "u-1")
		clk.Advance(24 * time.Hour)
		assert.Zero(t, r.Sweep(clk.Now()))
	})
}

func TestRegistry_Run(t *testing.T) {
	r, clk := newRegistry(time.Minute)
	r.Open("p-1", "u-1")
	clk.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
