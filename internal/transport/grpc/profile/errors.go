package profile

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/transport/taskapi"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return status.Error(codes.NotFound, "session not found")

	case errors.Is(err, domain.ErrProfileNotFound):
		return status.Error(codes.NotFound, "partner profile not found")

	case errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrFieldNotEditable),
		errors.Is(err, domain.ErrFieldType),
		errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, domain.ErrSaveInProgress):
		return status.Error(codes.Aborted, "a save is already in progress")

	case errors.Is(err, taskapi.ErrTaskFailed),
		errors.Is(err, taskapi.ErrUnexpectedStatus),
		errors.Is(err, domain.ErrSaveFailed):
		return status.Error(codes.Unavailable, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "remote service timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
