package list_events

import (
	"context"

	"github.com/light-bringer/partner-profile-service/internal/models/m_outbox"
)

// Request contains filtering parameters for listing outbox events.
// Empty strings are not filtered on.
type Request struct {
	EventType   string // e.g. "partner_profile.saved"
	AggregateID string // partner id
	Status      string // "pending", "completed", "failed"
	Limit       int    // default 100, max 1000
}

// EventsReadModel defines the interface for reading events.
type EventsReadModel interface {
	ListEvents(ctx context.Context, req *Request) ([]*m_outbox.Data, error)
}

// Query handles the list events query use case.
type Query struct {
	readModel EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel EventsReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves a list of events with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*m_outbox.Data, error) {
	r := *req
	if r.Limit <= 0 {
		r.Limit = 100
	}
	if r.Limit > 1000 {
		r.Limit = 1000
	}
	return q.readModel.ListEvents(ctx, &r)
}
