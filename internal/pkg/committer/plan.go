// Package committer implements the Golden Mutation Pattern for Spanner.
//
// Repositories build mutations without applying them; use cases collect
// those mutations into a CommitPlan and apply the plan once, so a profile
// snapshot and its outbox event are written in the same transaction:
//
//	plan := committer.NewPlan()
//	plan.Add(snapshotRepo.InsertMut(snapshot))
//	plan.Add(outboxRepo.InsertMut(outboxRepo.EnrichEvent(event, payload)))
//	return committer.Apply(ctx, plan)
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan collects mutations to be applied atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer applies CommitPlans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply writes every mutation in plan in a single transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// ExecutePartitioned runs a DML statement as partitioned DML and returns
// the lower bound of affected rows. Used for bulk retention deletes that
// would exceed the per-transaction mutation limit.
func (c *Committer) ExecutePartitioned(ctx context.Context, stmt spanner.Statement) (int64, error) {
	n, err := c.client.PartitionedUpdate(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("partitioned update failed: %w", err)
	}
	return n, nil
}
