package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/queries/list_events"
	"github.com/light-bringer/partner-profile-service/internal/models/m_outbox"
	"github.com/light-bringer/partner-profile-service/internal/pkg/query"
)

// EventsReadModel implements list_events.EventsReadModel for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{client: client}
}

var _ list_events.EventsReadModel = (*EventsReadModel)(nil)

// EventsStatement builds the listing query for filter.
func EventsStatement(filter *list_events.Request) spanner.Statement {
	return query.From(m_outbox.TableName).
		Select(m_outbox.Columns...).
		WhereIf(filter.AggregateID != "", query.Eq(m_outbox.AggregateID, filter.AggregateID)).
		WhereIf(filter.EventType != "", query.Eq(m_outbox.EventType, filter.EventType)).
		WhereIf(filter.Status != "", query.Eq(m_outbox.Status, filter.Status)).
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(int64(filter.Limit)).
		Build()
}

// ListEvents returns matching outbox events, newest first.
func (r *EventsReadModel) ListEvents(ctx context.Context, filter *list_events.Request) ([]*m_outbox.Data, error) {
	iter := r.client.Single().Query(ctx, EventsStatement(filter))
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}
		event, err := m_outbox.FromRow(row)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
