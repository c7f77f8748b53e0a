package m_snapshot

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the profile_snapshots table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a snapshot. saved_at is taken
// from data rather than the commit timestamp so history ordering follows
// the save clock.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	changed := data.ChangedFields
	if changed == nil {
		changed = []string{}
	}
	return spanner.Insert(TableName, Columns, []any{
		data.SnapshotID,
		data.PartnerID,
		data.UserID,
		data.Profile,
		changed,
		data.TaskID,
		data.SavedAt,
	})
}

