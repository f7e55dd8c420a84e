package grpc

import (
	"context"

	pb "github.com/mlebedev/authgate/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// identity returns the caller placed on the context by the interceptor.
// User handlers are unreachable without it, so absence is an internal bug.
func identity(ctx context.Context) (*Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "no identity on context")
	}
	return id, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {

	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.ChangePassword(ctx, id.Subject, req.OldPassword, req.NewPassword); err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) GetRefreshTokens(ctx context.Context, req *pb.GetRefreshTokensRequest) (*pb.GetRefreshTokensResponse, error) {

	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := s.refreshTokens.List(ctx, id.Subject)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	resp := &pb.GetRefreshTokensResponse{}
	for _, t := range tokens {
		resp.RefreshTokens = append(resp.RefreshTokens, &pb.RefreshToken{
			Token:      t.Token,
			Origin:     t.Origin,
			CreatedAt:  t.CreatedAt,
			LastUsedAt: t.LastUsedAt,
			ExpiresAt:  t.ExpiresAt,
		})
	}
	return resp, nil
}

func (s *GRPCServer) DeleteRefreshToken(ctx context.Context, req *pb.DeleteRefreshTokenRequest) (*pb.DeleteRefreshTokenResponse, error) {

	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokens.Revoke(ctx, id.Subject, req.RefreshToken); err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.DeleteRefreshTokenResponse{}, nil
}

func (s *GRPCServer) CreateInviteToken(ctx context.Context, req *pb.CreateInviteTokenRequest) (*pb.CreateInviteTokenResponse, error) {

	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.invites.Create(ctx, id.Subject)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	s.logger.Info(ctx, "invite created", "issuer", id.Subject)
	return &pb.CreateInviteTokenResponse{
		Token: &pb.InviteToken{
			Token:     invite.Token,
			CreatedAt: invite.CreatedAt,
		},
	}, nil
}

func (s *GRPCServer) GetInviteTokens(ctx context.Context, req *pb.GetInviteTokensRequest) (*pb.GetInviteTokensResponse, error) {

	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	invites, err := s.invites.List(ctx, id.Subject)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	resp := &pb.GetInviteTokensResponse{}
	for _, inv := range invites {
		resp.Tokens = append(resp.Tokens, &pb.InviteToken{
			Token:     inv.Token,
			CreatedAt: inv.CreatedAt,
			UsedAt:    inv.UsedAt,
			UsedBy:    inv.UsedBy,
		})
	}
	return resp, nil
}

func (s *GRPCServer) DeleteInviteToken(ctx context.Context, req *pb.DeleteInviteTokenRequest) (*pb.DeleteInviteTokenResponse, error) {

	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.invites.Delete(ctx, id.Subject, req.Token); err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.DeleteInviteTokenResponse{}, nil
}
