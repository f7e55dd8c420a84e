package grpc

import (
	"context"
	"errors"

	"github.com/mlebedev/authgate/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError converts the internal error taxonomy into a gRPC status.
// Anything unmapped is an opaque Internal so storage details never leak to
// clients.
func (s *GRPCServer) statusFromError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, "invalid request")
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.InvalidArgument, "username or password invalid.")
	case errors.Is(err, common.ErrorConflict):
		return status.Error(codes.AlreadyExists, "username already taken")
	case errors.Is(err, common.ErrInvalidRefreshToken):
		return status.Error(codes.InvalidArgument, "invalid refresh token")
	case errors.Is(err, common.ErrInvalidInvite):
		return status.Error(codes.InvalidArgument, "invalid invite token")
	case errors.Is(err, common.ErrInviteAlreadyUsed):
		return status.Error(codes.FailedPrecondition, "invite token already used")
	case errors.Is(err, common.ErrInvalidOldPassword):
		return status.Error(codes.InvalidArgument, "old password invalid")
	case errors.Is(err, common.ErrTooManyAttempts):
		return status.Error(codes.ResourceExhausted, "too many attempts")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, "not allowed")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		s.logger.Error(ctx, "internal error", "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
