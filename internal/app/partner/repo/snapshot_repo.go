package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/models/m_snapshot"
	"github.com/light-bringer/partner-profile-service/internal/pkg/query"
)

// SnapshotRepo implements SnapshotRepository for Spanner.
type SnapshotRepo struct {
	client *spanner.Client
	model  *m_snapshot.Model
}

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(client *spanner.Client) *SnapshotRepo {
	return &SnapshotRepo{
		client: client,
		model:  m_snapshot.NewModel(),
	}
}

var _ contracts.SnapshotRepository = (*SnapshotRepo)(nil)

// InsertMut creates a mutation for inserting a snapshot.
func (r *SnapshotRepo) InsertMut(s *contracts.Snapshot) *spanner.Mutation {
	return r.model.InsertMut(&m_snapshot.Data{
		SnapshotID:    s.SnapshotID,
		PartnerID:     s.PartnerID,
		UserID:        s.UserID,
		Profile:       spanner.NullJSON{Value: jsonValue(s.Profile), Valid: s.Profile != ""},
		ChangedFields: s.ChangedFields,
		TaskID:        spanner.NullString{StringVal: s.TaskID, Valid: s.TaskID != ""},
		SavedAt:       s.SavedAt,
	})
}

// DeleteBeforeStmt returns a statement deleting snapshots older than cutoff.
func (r *SnapshotRepo) DeleteBeforeStmt(cutoff time.Time) spanner.Statement {
	return query.From(m_snapshot.TableName).
		Where(query.Lt(m_snapshot.SavedAt, cutoff)).
		BuildDelete()
}

// CountBefore counts snapshots older than cutoff.
func (r *SnapshotRepo) CountBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	stmt := query.From(m_snapshot.TableName).
		Where(query.Lt(m_snapshot.SavedAt, cutoff)).
		Count().
		Build()
	return countRows(ctx, r.client, stmt)
}

func countRows(ctx context.Context, client *spanner.Client, stmt spanner.Statement) (int64, error) {
	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return n, nil
}
