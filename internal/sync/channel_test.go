package sync

import (
	"context"
	"testing"

	"github.com/avoronov84/domainkeeper/internal/common"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestCredentialsInterceptor_AttachesMetadata(t *testing.T) {
	c := &grpcChannel{username: "alice", password: "secret"}

	var gotMD metadata.MD
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		gotMD, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := c.credentialsInterceptor(context.Background(), "/domainkeeper.sync.SyncService/Pull", nil, nil, nil, invoker)
	require.NoError(t, err)

	require.Equal(t, []string{"alice"}, gotMD.Get(common.UsernameHeaderName))
	require.Equal(t, []string{"secret"}, gotMD.Get(common.PasswordHeaderName))
}

func TestCredentialsInterceptor_PreservesCallerMetadata(t *testing.T) {
	c := &grpcChannel{username: "alice", password: "secret"}

	var gotMD metadata.MD
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		gotMD, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), "trace-id", "abc123")
	err := c.credentialsInterceptor(ctx, "/domainkeeper.sync.SyncService/Push", nil, nil, nil, invoker)
	require.NoError(t, err)

	require.Equal(t, []string{"abc123"}, gotMD.Get("trace-id"))
	require.Equal(t, []string{"alice"}, gotMD.Get(common.UsernameHeaderName))
}

func TestNewGRPCChannel_RejectsInvalidCertificate(t *testing.T) {
	_, err := NewGRPCChannel("localhost:50051", "alice", "secret", []byte("not a pem block"))
	require.ErrorIs(t, err, common.ErrInvalidArgument)
}
