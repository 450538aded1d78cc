// Package grpc implements the sync server endpoint: a TLS-terminated gRPC
// service that stores and returns one opaque payload blob per deployment.
package grpc

import (
	"context"
	"net"

	"github.com/avoronov84/domainkeeper/internal/logging"
	pb "github.com/avoronov84/domainkeeper/internal/proto"
	"github.com/avoronov84/domainkeeper/internal/server/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

type GRPCServer struct {
	pb.UnimplementedSyncServiceServer
	address  string
	store    *storage.BlobStore
	logger   logging.Logger
	username string
	password string
	certFile string
	keyFile  string
}

func NewGRPCServer(address string, l logging.Logger, store *storage.BlobStore, username, password, certFile, keyFile string) *GRPCServer {
	return &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		store:    store,
		username: username,
		password: password,
		certFile: certFile,
		keyFile:  keyFile,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	creds, err := credentials.NewServerTLSFromFile(s.certFile, s.keyFile)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.Creds(creds),
		grpc.ChainUnaryInterceptor(s.credentialsInterceptor),
	)

	pb.RegisterSyncServiceServer(srv, s)

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
