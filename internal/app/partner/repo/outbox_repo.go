package repo

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/models/m_outbox"
	"github.com/light-bringer/partner-profile-service/internal/pkg/query"
)

// OutboxRepo implements OutboxRepository for Spanner.
type OutboxRepo struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(client *spanner.Client) *OutboxRepo {
	return &OutboxRepo{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

var _ contracts.OutboxRepository = (*OutboxRepo)(nil)

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	return r.model.InsertMut(&m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     spanner.NullJSON{Value: jsonValue(event.Payload), Valid: event.Payload != ""},
		Status:      event.Status,
	})
}

// EnrichEvent converts a domain event to an outbox event with metadata.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

// DeleteProcessedBeforeStmt returns a statement deleting completed events
// created before cutoff. Pending and failed events are kept.
func (r *OutboxRepo) DeleteProcessedBeforeStmt(cutoff time.Time) spanner.Statement {
	return query.From(m_outbox.TableName).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusCompleted)).
		Where(query.Lt(m_outbox.CreatedAt, cutoff)).
		BuildDelete()
}

// CountProcessedBefore counts the events DeleteProcessedBeforeStmt would remove.
func (r *OutboxRepo) CountProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	stmt := query.From(m_outbox.TableName).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusCompleted)).
		Where(query.Lt(m_outbox.CreatedAt, cutoff)).
		Count().
		Build()
	return countRows(ctx, r.client, stmt)
}

// jsonValue wraps a JSON document so the Spanner client stores it as is
// instead of re-encoding it as a JSON string.
func jsonValue(doc string) any {
	if doc == "" {
		return nil
	}
	return json.RawMessage(doc)
}
