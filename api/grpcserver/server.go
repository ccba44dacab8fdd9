package grpcserver

import (
	"context"
	"errors"

	"github.com/tliron/commonlog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dpzmick/sustain/api/pb"
	"github.com/dpzmick/sustain/domain/wave"
	"github.com/dpzmick/sustain/reclaim"
	"github.com/dpzmick/sustain/service"
)

var log = commonlog.GetLogger("sustain.grpc")

// Server adapts the engine to gRPC.
type Server struct {
	pb.UnimplementedSustainServer
	svc *service.Engine
}

func NewServer(svc *service.Engine) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Publish(
	ctx context.Context,
	req *pb.PublishRequest,
) (*pb.PublishResponse, error) {
	shape, err := wave.ParseShape(req.Shape)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "shape %q", req.Shape)
	}

	seq, err := s.svc.PublishWave(shape, req.FreqHz, req.Volume)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Infof(
		"[gRPC] Publish shape=%s freq=%.1f volume=%.2f seq=%d",
		shape, req.FreqHz, req.Volume, seq,
	)

	return &pb.PublishResponse{Seq: seq}, nil
}

func (s *Server) Capture(
	ctx context.Context,
	req *pb.CaptureRequest,
) (*pb.CaptureResponse, error) {
	if req.Path == "" {
		return nil, status.Error(codes.InvalidArgument, "path required")
	}

	seq, err := s.svc.Capture(req.Path)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Infof("[gRPC] Capture path=%s seq=%d", req.Path, seq)

	return &pb.CaptureResponse{Seq: seq, Path: req.Path}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetStats(
	ctx context.Context,
	req *pb.StatsRequest,
) (*pb.StatsResponse, error) {
	st := s.svc.Stats()

	return &pb.StatsResponse{
		Published:    st.Published,
		Reclaimed:    st.Reclaimed,
		Live:         uint32(st.Live),
		Swaps:        st.Swaps,
		Underruns:    st.Underruns,
		Xruns:        st.Xruns,
		ChannelDepth: uint32(st.ChannelDepth),
	}, nil
}

func (s *Server) ListBlocks(
	ctx context.Context,
	req *pb.ListBlocksRequest,
) (*pb.ListBlocksResponse, error) {
	blocks := s.svc.Blocks()

	resp := &pb.ListBlocksResponse{
		Blocks: make([]*pb.BlockInfo, 0, len(blocks)),
	}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, &pb.BlockInfo{
			Seq:     b.Seq,
			Holders: b.Holders,
			Frames:  uint32(b.Frames),
			AgeMs:   b.AgeMS,
		})
	}

	return resp, nil
}

// -------------------- Converters --------------------

func toStatus(err error) error {
	switch {
	case errors.Is(err, reclaim.ErrRegistryFull):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, service.ErrClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, wave.ErrVolume), errors.Is(err, wave.ErrCycles):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
