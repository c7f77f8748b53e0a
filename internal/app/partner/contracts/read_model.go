package contracts

import (
	"context"
	"time"
)

// SnapshotDTO is a data transfer object for history queries.
type SnapshotDTO struct {
	SnapshotID    string    `json:"snapshot_id"`
	PartnerID     string    `json:"partner_id"`
	UserID        string    `json:"user_id"`
	ChangedFields []string  `json:"changed_fields"`
	TaskID        string    `json:"task_id,omitempty"`
	SavedAt       time.Time `json:"saved_at"`
	Profile       string    `json:"-"`
}

// HistoryFilter defines filtering options for listing snapshots.
type HistoryFilter struct {
	PartnerID string
	UserID    string
	Field     string    // domain field name, e.g. "goals"; empty means any
	Since     time.Time // zero means no lower bound
	Limit     int
}

// HistoryReadModel defines the interface for snapshot history queries.
type HistoryReadModel interface {
	// ListByPartner returns snapshots for a partner, most recent first
	ListByPartner(ctx context.Context, filter *HistoryFilter) ([]*SnapshotDTO, error)
}
