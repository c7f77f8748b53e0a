package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitPlan(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(spanner.Insert("profile_snapshots", []string{"snapshot_id"}, []any{"s-1"}))
	plan.Add(nil)
	plan.AddMultiple([]*spanner.Mutation{
		spanner.Insert("outbox_events", []string{"event_id"}, []any{"e-1"}),
		nil,
	})

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 2, plan.Count())
	assert.Len(t, plan.Mutations(), 2)
}

func TestCommitter_ApplyEmptyPlan(t *testing.T) {
	c := NewCommitter(nil)
	require.NoError(t, c.Apply(context.Background(), NewPlan()))
}
