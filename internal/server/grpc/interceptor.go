package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlebedev/authgate/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Every method of the User service requires an access token; the Auth
// service stays open.
const protectedServicePrefix = "/authgate.v1.User/"

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if strings.HasPrefix(info.FullMethod, protectedServicePrefix) {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.PermissionDenied, "missing token")
		}

		claims, err := s.codec.Validate(accessToken)
		if err != nil {
			return nil, status.Error(codes.PermissionDenied, "invalid token")
		}

		ctx = WithIdentity(ctx, &Identity{Subject: claims.Subject, Claims: claims})
	}

	return handler(ctx, req)
}

func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	requestID := uuid.NewString()
	ctx = withRequestID(ctx, requestID)

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request handled",
		"request_id", requestID,
		"method", info.FullMethod,
		"duration", time.Since(start).String(),
		"code", status.Code(err).String(),
	)

	return resp, err
}
