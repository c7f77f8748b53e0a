package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/models/m_snapshot"
	"github.com/light-bringer/partner-profile-service/internal/pkg/query"
)

// HistoryReadModel implements contracts.HistoryReadModel for Spanner.
type HistoryReadModel struct {
	client *spanner.Client
}

// NewHistoryReadModel creates a new HistoryReadModel.
func NewHistoryReadModel(client *spanner.Client) *HistoryReadModel {
	return &HistoryReadModel{client: client}
}

var _ contracts.HistoryReadModel = (*HistoryReadModel)(nil)

// HistoryStatement builds the listing query for filter.
func HistoryStatement(filter *contracts.HistoryFilter) spanner.Statement {
	return query.From(m_snapshot.TableName).
		Select(m_snapshot.SummaryColumns...).
		Where(query.Eq(m_snapshot.PartnerID, filter.PartnerID)).
		WhereIf(filter.UserID != "", query.Eq(m_snapshot.UserID, filter.UserID)).
		WhereIf(filter.Field != "", query.ArrayContains(m_snapshot.ChangedFields, filter.Field)).
		WhereIf(!filter.Since.IsZero(), query.Gte(m_snapshot.SavedAt, filter.Since)).
		OrderBy(m_snapshot.SavedAt, query.Desc).
		Limit(int64(filter.Limit)).
		Build()
}

// ListByPartner returns snapshots for a partner, most recent first.
func (r *HistoryReadModel) ListByPartner(ctx context.Context, filter *contracts.HistoryFilter) ([]*contracts.SnapshotDTO, error) {
	iter := r.client.Single().Query(ctx, HistoryStatement(filter))
	defer iter.Stop()

	var out []*contracts.SnapshotDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
		}

		var (
			dto    contracts.SnapshotDTO
			taskID spanner.NullString
		)
		if err := row.Columns(
			&dto.SnapshotID,
			&dto.PartnerID,
			&dto.UserID,
			&dto.ChangedFields,
			&taskID,
			&dto.SavedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		dto.TaskID = taskID.StringVal
		out = append(out, &dto)
	}
	return out, nil
}
