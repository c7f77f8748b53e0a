package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/queries/list_events"
	"github.com/light-bringer/partner-profile-service/internal/models/m_outbox"
)

// EventLister lists outbox events.
type EventLister interface {
	Execute(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, error)
}

// EventsHandler handles HTTP requests for events.
type EventsHandler struct {
	events EventLister
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(events EventLister) *EventsHandler {
	return &EventsHandler{events: events}
}

// Event represents a domain event in the HTTP response.
type Event struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	AggregateID  string          `json:"aggregate_id"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	ProcessedAt  *string         `json:"processed_at,omitempty"`
	RetryCount   int64           `json:"retry_count"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int     `json:"total_count"`
}

// List handles GET /api/v1/events and GET /api/v1/partners/:partner_id/events.
func (h *EventsHandler) List(c *gin.Context) {
	req := &list_events.Request{
		EventType:   c.Query("event_type"),
		AggregateID: c.Query("aggregate_id"),
		Status:      c.Query("status"),
	}
	if partnerID := c.Param("partner_id"); partnerID != "" {
		req.AggregateID = partnerID
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		req.Limit = limit
	}

	rows, err := h.events.Execute(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		_ = c.Error(err)
		return
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, toEvent(row))
	}
	c.JSON(http.StatusOK, ListEventsResponse{Events: events, TotalCount: len(events)})
}

func toEvent(row *m_outbox.Data) Event {
	event := Event{
		EventID:     row.EventID,
		EventType:   row.EventType,
		AggregateID: row.AggregateID,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt.UTC().Format(time.RFC3339),
		RetryCount:  row.RetryCount,
	}
	if row.Payload.Valid {
		if data, err := json.Marshal(row.Payload.Value); err == nil {
			event.Payload = data
		}
	}
	if row.ProcessedAt.Valid {
		processedAt := row.ProcessedAt.Time.UTC().Format(time.RFC3339)
		event.ProcessedAt = &processedAt
	}
	if row.ErrorMessage.Valid {
		event.ErrorMessage = row.ErrorMessage.StringVal
	}
	return event
}
