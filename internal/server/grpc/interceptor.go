package grpc

import (
	"context"
	"crypto/subtle"

	"github.com/avoronov84/domainkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// credentialsInterceptor requires every call to carry the configured
// username/password pair in its metadata.
func (s *GRPCServer) credentialsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	username, password := credentialsFromContext(ctx)

	if username == "" || password == "" {
		return nil, status.Error(codes.Unauthenticated, "missing credentials")
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !usernameOK || !passwordOK {
		s.logger.Warn(ctx, "rejected call with bad credentials", "method", info.FullMethod, "username", username)
		return nil, status.Error(codes.Unauthenticated, common.ErrUnauthorized.Error())
	}

	return handler(ctx, req)
}

func credentialsFromContext(ctx context.Context) (username, password string) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ""
	}
	if values := md.Get(common.UsernameHeaderName); len(values) > 0 {
		username = values[0]
	}
	if values := md.Get(common.PasswordHeaderName); len(values) > 0 {
		password = values[0]
	}
	return username, password
}
