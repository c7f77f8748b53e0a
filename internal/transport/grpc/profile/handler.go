// Package profile exposes partner profile editing sessions over gRPC.
package profile

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/sessions"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/usecases/load_profile"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/usecases/save_profile"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
)

// Handler implements SessionServiceServer.
// It's a thin coordinator that delegates to the session registry and use cases.
type Handler struct {
	registry    *sessions.Registry
	loadProfile *load_profile.Interactor
	saveProfile *save_profile.Interactor
	logger      *zap.Logger
}

// NewHandler creates a new gRPC session handler.
func NewHandler(
	registry *sessions.Registry,
	loadProfile *load_profile.Interactor,
	saveProfile *save_profile.Interactor,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		registry:    registry,
		loadProfile: loadProfile,
		saveProfile: saveProfile,
		logger:      logger,
	}
}

var _ SessionServiceServer = (*Handler)(nil)

// OpenSession loads a partner profile into a new editing session.
func (h *Handler) OpenSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// 1. Validate request
	partnerID, userID, err := validateOpenSessionRequest(req)
	if err != nil {
		return nil, err
	}

	// 2. Open session and load the profile into its store
	sess := h.registry.Open(partnerID, userID)
	if _, err := h.loadProfile.Execute(ctx, &load_profile.Request{
		Store:     sess.Store,
		PartnerID: partnerID,
		UserID:    userID,
	}); err != nil {
		_ = h.registry.Close(sess.ID)
		h.logger.Warn("failed to load partner profile",
			zap.String("partner_id", partnerID), zap.Error(err))
		return nil, mapDomainErrorToGRPC(err)
	}

	// 3. Return response
	return toStruct(sessionView(sess))
}

// GetSession returns the current state of a session.
func (h *Handler) GetSession(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sess, err := h.session(req)
	if err != nil {
		return nil, err
	}
	return toStruct(sessionView(sess))
}

// UpdateField edits one field of the session draft.
func (h *Handler) UpdateField(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, field, raw, err := validateUpdateFieldRequest(req)
	if err != nil {
		return nil, err
	}
	sess, err := h.registry.Get(sessionID)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	value, err := wire.DecodeField(field, raw)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	if err := sess.Store.UpdateField(field, value); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return toStruct(sessionView(sess))
}

// ResetSession discards the draft in favour of the saved profile.
func (h *Handler) ResetSession(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sess, err := h.session(req)
	if err != nil {
		return nil, err
	}
	if err := sess.Store.ResetToSaved(); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return toStruct(sessionView(sess))
}

// DiffSession lists the fields that differ between draft and saved.
func (h *Handler) DiffSession(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sess, err := h.session(req)
	if err != nil {
		return nil, err
	}
	return toStruct(diffView(sess))
}

// SaveSession submits the session draft to the remote service.
func (h *Handler) SaveSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sess, err := h.session(req)
	if err != nil {
		return nil, err
	}

	resp, err := h.saveProfile.Execute(ctx, &save_profile.Request{
		Store:     sess.Store,
		UserID:    sess.UserID,
		PartnerID: sess.PartnerID,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	view := sessionView(sess)
	view["saved"] = resp.Saved
	view["task_id"] = resp.TaskID
	view["changed_fields"] = fieldNames(resp.ChangedFields)
	return toStruct(view)
}

// CloseSession ends a session. Unsaved edits are discarded.
func (h *Handler) CloseSession(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sess, err := h.session(req)
	if err != nil {
		return nil, err
	}
	discarded := sess.Store.HasUnsavedChanges()
	if err := h.registry.Close(sess.ID); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	if discarded {
		h.logger.Info("session closed with unsaved changes",
			zap.String("session_id", sess.ID), zap.String("partner_id", sess.PartnerID))
	}
	return toStruct(map[string]any{
		keySessionID:        sess.ID,
		"closed":            true,
		"discarded_changes": discarded,
	})
}

func (h *Handler) session(req *structpb.Struct) (*sessions.Session, error) {
	id, err := requireString(req, keySessionID)
	if err != nil {
		return nil, err
	}
	sess, err := h.registry.Get(id)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return sess, nil
}
