package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
)

// Snapshot is a saved profile recorded after a successful update.
type Snapshot struct {
	SnapshotID    string
	PartnerID     string
	UserID        string
	Profile       string // JSON wire payload
	ChangedFields []string
	TaskID        string
	SavedAt       time.Time
}

// SnapshotRepository defines the interface for snapshot persistence.
// Repositories return mutations and statements, they don't apply them
// (Golden Mutation Pattern).
type SnapshotRepository interface {
	// InsertMut creates a mutation for inserting a snapshot
	InsertMut(s *Snapshot) *spanner.Mutation

	// DeleteBeforeStmt returns a DML statement removing snapshots saved before cutoff
	DeleteBeforeStmt(cutoff time.Time) spanner.Statement

	// CountBefore counts snapshots saved before cutoff
	CountBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
