package m_snapshot

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the profile_snapshots table.
type Data struct {
	SnapshotID    string             `spanner:"snapshot_id"`
	PartnerID     string             `spanner:"partner_id"`
	UserID        string             `spanner:"user_id"`
	Profile       spanner.NullJSON   `spanner:"profile"`
	ChangedFields []string           `spanner:"changed_fields"`
	TaskID        spanner.NullString `spanner:"task_id"`
	SavedAt       time.Time          `spanner:"saved_at"`
}
