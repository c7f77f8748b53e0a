package profile

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
)

const (
	keySessionID = "session_id"
	keyPartnerID = "partner_id"
	keyUserID    = "user_id"
	keyField     = "field"
	keyValue     = "value"
)

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func requireString(req *structpb.Struct, key string) (string, error) {
	v := stringField(req, key)
	if v == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", key)
	}
	return v, nil
}

// validateOpenSessionRequest validates the OpenSession request.
func validateOpenSessionRequest(req *structpb.Struct) (partnerID, userID string, err error) {
	if partnerID, err = requireString(req, keyPartnerID); err != nil {
		return "", "", err
	}
	if userID, err = requireString(req, keyUserID); err != nil {
		return "", "", err
	}
	return partnerID, userID, nil
}

// validateUpdateFieldRequest validates the UpdateField request.
func validateUpdateFieldRequest(req *structpb.Struct) (sessionID string, field domain.Field, value any, err error) {
	if sessionID, err = requireString(req, keySessionID); err != nil {
		return "", "", nil, err
	}
	name, err := requireString(req, keyField)
	if err != nil {
		return "", "", nil, err
	}
	field = domain.Field(name)
	if !field.Valid() {
		return "", "", nil, status.Errorf(codes.InvalidArgument, "unknown field %q", name)
	}
	if !field.Editable() {
		return "", "", nil, status.Errorf(codes.InvalidArgument, "field %q is not editable", name)
	}
	raw, ok := req.GetFields()[keyValue]
	if !ok {
		return "", "", nil, status.Error(codes.InvalidArgument, "value is required")
	}
	return sessionID, field, raw.AsInterface(), nil
}
