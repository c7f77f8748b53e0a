package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/sessions"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
)

// toStruct converts a JSON-shaped map into a Struct. Values go through
// encoding/json first so typed slices and nested maps are accepted.
func toStruct(m map[string]any) (*structpb.Struct, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode reply: %w", err)
	}
	var normalized map[string]any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, fmt.Errorf("encode reply: %w", err)
	}
	return structpb.NewStruct(normalized)
}

func fieldNames(fields []domain.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// sessionView is the reply shape shared by session-returning methods.
func sessionView(s *sessions.Session) map[string]any {
	st := s.Store
	return map[string]any{
		keySessionID:          s.ID,
		keyPartnerID:          s.PartnerID,
		keyUserID:             s.UserID,
		"status":              st.Status().String(),
		"has_unsaved_changes": st.HasUnsavedChanges(),
		"last_error":          st.LastError(),
		"touched_fields":      fieldNames(st.TouchedFields()),
		"opened_at":           s.OpenedAt.UTC().Format(time.RFC3339),
		"draft":               wire.ToWire(st.Draft(), nil),
	}
}

func diffView(s *sessions.Session) map[string]any {
	draft := s.Store.Draft()
	changed := domain.ComputeProfileDiff(draft, s.Store.Saved()).Fields()
	return map[string]any{
		keySessionID:     s.ID,
		"changed_fields": fieldNames(changed),
		"changes":        wire.FieldsToWire(draft, changed),
	}
}
