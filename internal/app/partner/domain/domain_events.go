package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProfileSavedEvent is emitted when a draft has been accepted by the remote
// service and promoted to the saved profile.
type ProfileSavedEvent struct {
	PartnerID     string    `json:"partner_id"`
	UserID        string    `json:"user_id"`
	ChangedFields []Field   `json:"changed_fields"`
	TaskID        string    `json:"task_id,omitempty"`
	SavedAt       time.Time `json:"saved_at"`
}

func (e *ProfileSavedEvent) EventType() string {
	return "partner_profile.saved"
}

func (e *ProfileSavedEvent) AggregateID() string {
	return e.PartnerID
}

// ProfileSaveFailedEvent is emitted when the remote service rejected a save.
type ProfileSaveFailedEvent struct {
	PartnerID string    `json:"partner_id"`
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason"`
	FailedAt  time.Time `json:"failed_at"`
}

func (e *ProfileSaveFailedEvent) EventType() string {
	return "partner_profile.save_failed"
}

func (e *ProfileSaveFailedEvent) AggregateID() string {
	return e.PartnerID
}
