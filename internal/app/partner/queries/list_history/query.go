package list_history

import (
	"context"
	"fmt"
	"time"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
)

const (
	DefaultLimit = 20
	MaxLimit     = 200
)

// Request contains filtering parameters for listing saved snapshots.
type Request struct {
	PartnerID string
	UserID    string    // optional
	Field     string    // optional, only snapshots that changed this field
	Since     time.Time // optional
	Limit     int
}

// Query handles the list history query use case.
type Query struct {
	readModel contracts.HistoryReadModel
}

// NewQuery creates a new list history query.
func NewQuery(readModel contracts.HistoryReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the most recent snapshots for a partner.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.SnapshotDTO, error) {
	if req.PartnerID == "" {
		return nil, fmt.Errorf("partner ID is required")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return q.readModel.ListByPartner(ctx, &contracts.HistoryFilter{
		PartnerID: req.PartnerID,
		UserID:    req.UserID,
		Field:     req.Field,
		Since:     req.Since,
		Limit:     limit,
	})
}
