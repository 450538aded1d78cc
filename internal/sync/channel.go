package sync

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"github.com/avoronov84/domainkeeper/internal/common"
	pb "github.com/avoronov84/domainkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Channel is the secure transport the sync client delegates to. An
// implementation performs mutual authentication against the remote store and
// moves opaque payloads; it holds no knowledge of their contents.
type Channel interface {
	Pull(ctx context.Context) ([]byte, error)
	Push(ctx context.Context, payload []byte) error
	Close() error
}

// ChannelFactory builds a Channel from remote-store coordinates. The
// certificate is handed over as in-memory PEM data; no credential material
// touches the filesystem.
type ChannelFactory func(serverAddress, username, password string, certificatePEM []byte) (Channel, error)

type grpcChannel struct {
	conn     *grpc.ClientConn
	client   pb.SyncServiceClient
	username string
	password string
}

// NewGRPCChannel connects to serverAddress over TLS rooted at the given PEM
// certificate. Username and password ride as request metadata on every call.
func NewGRPCChannel(serverAddress, username, password string, certificatePEM []byte) (Channel, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(certificatePEM) {
		return nil, fmt.Errorf("%w: no certificate found in PEM data", common.ErrInvalidArgument)
	}

	c := &grpcChannel{username: username, password: password}

	conn, err := grpc.NewClient(serverAddress,
		grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{RootCAs: pool})),
		grpc.WithUnaryInterceptor(c.credentialsInterceptor),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", serverAddress, err)
	}

	c.conn = conn
	c.client = pb.NewSyncServiceClient(conn)
	return c, nil
}

func (c *grpcChannel) credentialsInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, ok := metadata.FromOutgoingContext(ctx)
	if ok {
		md = md.Copy()
	} else {
		md = metadata.MD{}
	}
	md.Set(common.UsernameHeaderName, c.username)
	md.Set(common.PasswordHeaderName, c.password)

	return invoker(metadata.NewOutgoingContext(ctx, md), method, req, reply, cc, opts...)
}

func (c *grpcChannel) Pull(ctx context.Context) ([]byte, error) {
	resp, err := c.client.Pull(ctx, &pb.PullRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Payload, nil
}

func (c *grpcChannel) Push(ctx context.Context, payload []byte) error {
	resp, err := c.client.Push(ctx, &pb.PushRequest{Payload: payload})
	if err != nil {
		return mapError(err)
	}
	if !resp.Accepted {
		return fmt.Errorf("%w: push rejected by remote store", common.ErrTransportFailure)
	}
	return nil
}

func (c *grpcChannel) Close() error {
	return c.conn.Close()
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrTransportFailure, st.Message())
	default:
		return fmt.Errorf("%w: rpc error: %v", common.ErrTransportFailure, err)
	}
}
