package m_snapshot

// Column names of the profile_snapshots table.
const (
	TableName = "profile_snapshots"

	SnapshotID    = "snapshot_id"
	PartnerID     = "partner_id"
	UserID        = "user_id"
	Profile       = "profile"
	ChangedFields = "changed_fields"
	TaskID        = "task_id"
	SavedAt       = "saved_at"
)

// Columns lists every column in table order.
var Columns = []string{SnapshotID, PartnerID, UserID, Profile, ChangedFields, TaskID, SavedAt}

// SummaryColumns are the columns history listings read; the profile
// payload is left out.
var SummaryColumns = []string{SnapshotID, PartnerID, UserID, ChangedFields, TaskID, SavedAt}
