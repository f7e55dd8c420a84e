package grpc

import (
	"context"

	pb "github.com/mlebedev/authgate/internal/proto"
	"google.golang.org/grpc/peer"
)

// callerAddr returns the remote address of the client for refresh-token
// origin bookkeeping.
func callerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown address"
}

func (s *GRPCServer) GetRefreshToken(ctx context.Context, req *pb.GetRefreshTokenRequest) (*pb.GetRefreshTokenResponse, error) {

	session, err := s.accounts.Login(ctx, req.Username, req.Password, callerAddr(ctx))
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	s.logger.Info(ctx, "login", "username", req.Username)
	return &pb.GetRefreshTokenResponse{
		RefreshToken: session.RefreshToken,
		AccessToken:  session.AccessToken,
		AccessExp:    session.AccessExp,
	}, nil
}

func (s *GRPCServer) GetAccessToken(ctx context.Context, req *pb.GetAccessTokenRequest) (*pb.GetAccessTokenResponse, error) {

	accessToken, exp, err := s.accounts.Refresh(ctx, req.Username, req.RefreshToken)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.GetAccessTokenResponse{AccessToken: accessToken, Exp: exp}, nil
}

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.SignupResponse, error) {

	// A signup-issued refresh token records the username as its origin.
	session, err := s.accounts.Signup(ctx, req.Username, req.Password, req.InviteCode, req.Username)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	s.logger.Info(ctx, "signup", "username", req.Username)
	return &pb.SignupResponse{
		RefreshToken: session.RefreshToken,
		AccessToken:  session.AccessToken,
		AccessExp:    session.AccessExp,
	}, nil
}
