package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
)

// ErrMalformedResult is returned when a task result does not carry a
// profile object.
var ErrMalformedResult = errors.New("malformed partner profile result")

// DecodeGetResult normalizes the result of a partner_profile_get task. The
// remote service returns the profile either directly or wrapped as
// {"partner_profile": {...}}; a JSON-encoded string is also accepted.
func DecodeGetResult(result any) (Object, error) {
	if s, ok := result.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
		}
		result = decoded
	}

	obj, ok := readObject(result)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrMalformedResult, result)
	}
	inner, wrapped := obj[PartnerProfile]
	if !wrapped {
		return obj, nil
	}
	profile, ok := readObject(inner)
	if !ok {
		return nil, fmt.Errorf("%w: partner_profile is %T", ErrMalformedResult, inner)
	}
	return profile, nil
}

// DecodeField converts a loosely typed wire value into the typed domain
// value of field, applying the same tolerance rules as ToDomain.
func DecodeField(field domain.Field, value any) (any, error) {
	path, ok := fieldPaths[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	raw := Object{}
	if len(path) == 2 {
		raw[path[0]] = Object{path[1]: value}
	} else {
		raw[path[0]] = value
	}
	return domain.Get(ToDomain(raw), field)
}
