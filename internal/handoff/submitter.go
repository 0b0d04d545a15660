package handoff

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	handoffpb "github.com/dalbodeule/grip-gate/internal/handoff/pb"
	"github.com/dalbodeule/grip-gate/internal/logging"
)

// GRPCSubmitter 는 long-poll 서브시스템의 GripGateHandoff 서비스로
// AcceptData 를 전달하는 클라이언트입니다.
//
// 연결은 지연 생성되며 프로세스 생명주기 동안 재사용됩니다. handoff 채널은
// 같은 호스트의 서브시스템과 연결되는 것을 전제로 하므로 TLS 없이 동작합니다.
type GRPCSubmitter struct {
	log  logging.Logger
	addr string

	mu     sync.Mutex
	conn   *grpc.ClientConn
	client handoffpb.GripGateHandoffClient
}

// NewGRPCSubmitter 는 주소만 기억하는 submitter 를 만듭니다.
// 실제 연결은 첫 Submit 에서 이루어집니다.
func NewGRPCSubmitter(logger logging.Logger, addr string) *GRPCSubmitter {
	return &GRPCSubmitter{
		log:  logger.With(logging.Fields{"component": "handoff_submitter"}),
		addr: addr,
	}
}

func (s *GRPCSubmitter) ensureClient() (handoffpb.GripGateHandoffClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	conn, err := grpc.NewClient(s.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial handoff subsystem: %w", err)
	}

	s.conn = conn
	s.client = handoffpb.NewGripGateHandoffClient(conn)
	return s.client, nil
}

// Submit 은 AcceptData 하나를 전달하고 Ack 를 기다립니다.
func (s *GRPCSubmitter) Submit(ctx context.Context, adata *AcceptData) error {
	client, err := s.ensureClient()
	if err != nil {
		return err
	}

	env, err := ToProtoEnvelope(adata)
	if err != nil {
		return err
	}

	stream, err := client.SubmitAccept(ctx)
	if err != nil {
		return fmt.Errorf("open handoff stream: %w", err)
	}

	if err := stream.Send(env); err != nil {
		return fmt.Errorf("send handoff envelope: %w", err)
	}
	if err := stream.CloseSend(); err != nil {
		return fmt.Errorf("close handoff send: %w", err)
	}

	ack, err := stream.Recv()
	if err != nil {
		return fmt.Errorf("recv handoff ack: %w", err)
	}
	if !ack.Ok {
		return fmt.Errorf("handoff rejected: %s", ack.Error)
	}

	s.log.Debug("handoff delivered", logging.Fields{
		"channel_prefix": adata.ChannelPrefix,
		"clients":        len(adata.Requests),
	})
	return nil
}

// Close 는 유지 중인 gRPC 연결을 닫습니다.
func (s *GRPCSubmitter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		err := s.conn.Close()
		s.conn = nil
		s.client = nil
		return err
	}
	return nil
}
