package grpc

import (
	"context"
	"errors"

	"github.com/avoronov84/domainkeeper/internal/common"
	pb "github.com/avoronov84/domainkeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Pull returns the stored payload. A store that has never accepted a push
// yields an empty payload, not an error, so fresh clients can probe the
// connection.
func (s *GRPCServer) Pull(ctx context.Context, req *pb.PullRequest) (*pb.PullResponse, error) {

	payload, revision, err := s.store.Load()

	if errors.Is(err, common.ErrNotFound) {
		s.logger.Info(ctx, "Pull with empty store")
		return &pb.PullResponse{}, nil
	}
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Pull", "revision", revision, "bytes", len(payload))
	return &pb.PullResponse{Payload: payload}, nil
}

// Push replaces the stored payload. An empty payload is refused via
// accepted=false rather than an error; the caller treats it as a failed
// synchronization, not a broken channel.
func (s *GRPCServer) Push(ctx context.Context, req *pb.PushRequest) (*pb.PushResponse, error) {

	if len(req.Payload) == 0 {
		s.logger.Warn(ctx, "Push with empty payload refused")
		return &pb.PushResponse{Accepted: false}, nil
	}

	revision, err := s.store.Save(req.Payload)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Push accepted", "revision", revision, "bytes", len(req.Payload))
	return &pb.PushResponse{Accepted: true}, nil
}
