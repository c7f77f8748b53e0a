package contracts

import (
	"context"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
)

// UpdateRequest is the input of a partner_profile_update task.
type UpdateRequest struct {
	UserID    string      `json:"user_id"`
	PartnerID string      `json:"partner_id"`
	Profile   wire.Object `json:"partner_profile"`
}

// TaskStatus is the envelope the task-execution service returns for every
// task. Result is opaque to the save path.
type TaskStatus struct {
	TaskID   string `json:"task_id"`
	Status   string `json:"status"`
	TaskType string `json:"task_type"`
	Result   any    `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ProfileGateway reaches the remote task-execution service.
type ProfileGateway interface {
	// FetchProfile returns the wire-shape profile, already unwrapped from
	// the task result.
	FetchProfile(ctx context.Context, partnerID, userID string) (wire.Object, error)

	// SubmitUpdate sends a profile update. Any returned error means the
	// update was not accepted.
	SubmitUpdate(ctx context.Context, req *UpdateRequest) (*TaskStatus, error)
}

// CacheInvalidator drops cached reads of a profile after it changes.
type CacheInvalidator interface {
	Invalidate(partnerID, userID string)
}
