// Package grpc exposes the Auth and User services over gRPC. Auth methods
// are public; User methods pass through the access-token interceptor.
package grpc

import (
	"context"
	"net"

	"github.com/mlebedev/authgate/internal/logging"
	pb "github.com/mlebedev/authgate/internal/proto"
	"github.com/mlebedev/authgate/internal/server/auth"
	"github.com/mlebedev/authgate/internal/server/invites"
	"github.com/mlebedev/authgate/internal/server/refreshtokens"
	"github.com/mlebedev/authgate/internal/server/users"
	"google.golang.org/grpc"
)

// AccountService is the slice of users.Service the handlers need.
type AccountService interface {
	Login(ctx context.Context, username, password, origin string) (*users.Session, error)
	Signup(ctx context.Context, username, password, inviteCode, origin string) (*users.Session, error)
	Refresh(ctx context.Context, username, refreshToken string) (string, int64, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

type RefreshTokenRegistry interface {
	List(ctx context.Context, username string) ([]*refreshtokens.RefreshToken, error)
	Revoke(ctx context.Context, username, token string) error
}

type InviteRegistry interface {
	Create(ctx context.Context, issuer string) (*invites.Invite, error)
	List(ctx context.Context, issuer string) ([]*invites.Invite, error)
	Delete(ctx context.Context, issuer, encodedToken string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	pb.UnimplementedUserServer
	address       string
	accounts      AccountService
	refreshTokens RefreshTokenRegistry
	invites       InviteRegistry
	codec         *auth.Codec
	logger        logging.Logger
}

func NewGRPCServer(address string, accounts AccountService, refreshTokens RefreshTokenRegistry,
	invites InviteRegistry, codec *auth.Codec, logger logging.Logger) *GRPCServer {
	return &GRPCServer{
		address:       address,
		accounts:      accounts,
		refreshTokens: refreshTokens,
		invites:       invites,
		codec:         codec,
		logger:        logger.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestLogInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterAuthServer(srv, s)
	pb.RegisterUserServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
