package m_outbox

import (
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
)

// Model builds mutations for the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a pending event. created_at is
// set to the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []any{
		data.EventID,
		data.EventType,
		data.AggregateID,
		data.Payload,
		data.Status,
		spanner.CommitTimestamp,
		data.ProcessedAt,
		data.RetryCount,
		data.ErrorMessage,
	})
}

// MarkProcessedMut creates a mutation moving an event to completed.
func (m *Model) MarkProcessedMut(eventID string, at time.Time) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{EventID, Status, ProcessedAt},
		[]any{eventID, StatusCompleted, at})
}


// FromRow decodes a row read with Columns.
func FromRow(row *spanner.Row) (*Data, error) {
	var d Data
	if err := row.ToStruct(&d); err != nil {
		return nil, fmt.Errorf("decode outbox row: %w", err)
	}
	return &d, nil
}
