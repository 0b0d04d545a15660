package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative handoff.proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GripGateHandoffClient is the client API for the GripGateHandoff service.
type GripGateHandoffClient interface {
	// SubmitAccept establishes a long-lived bi-directional stream between
	// the gateway and the long-poll subsystem. Accept handoff snapshots are
	// sent as Envelope messages and acknowledged with Ack messages.
	SubmitAccept(ctx context.Context, opts ...grpc.CallOption) (GripGateHandoff_SubmitAcceptClient, error)
}

type gripGateHandoffClient struct {
	cc grpc.ClientConnInterface
}

// NewGripGateHandoffClient creates a new GripGateHandoffClient.
func NewGripGateHandoffClient(cc grpc.ClientConnInterface) GripGateHandoffClient {
	return &gripGateHandoffClient{cc: cc}
}

func (c *gripGateHandoffClient) SubmitAccept(ctx context.Context, opts ...grpc.CallOption) (GripGateHandoff_SubmitAcceptClient, error) {
	stream, err := c.cc.NewStream(ctx, &_GripGateHandoff_serviceDesc.Streams[0], "/gripgate.handoff.v1.GripGateHandoff/SubmitAccept", opts...)
	if err != nil {
		return nil, err
	}
	return &gripGateHandoffSubmitAcceptClient{ClientStream: stream}, nil
}

// GripGateHandoff_SubmitAcceptClient is the client-side stream for SubmitAccept.
type GripGateHandoff_SubmitAcceptClient interface {
	Send(*Envelope) error
	Recv() (*Ack, error)
	grpc.ClientStream
}

type gripGateHandoffSubmitAcceptClient struct {
	grpc.ClientStream
}

func (x *gripGateHandoffSubmitAcceptClient) Send(m *Envelope) error {
	return x.ClientStream.SendMsg(m)
}

func (x *gripGateHandoffSubmitAcceptClient) Recv() (*Ack, error) {
	m := new(Ack)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GripGateHandoffServer is the server API for the GripGateHandoff service.
type GripGateHandoffServer interface {
	// SubmitAccept handles a long-lived bi-directional stream from the
	// gateway. Implementations read Envelope messages and write Ack messages.
	SubmitAccept(GripGateHandoff_SubmitAcceptServer) error
}

// UnimplementedGripGateHandoffServer can be embedded to have forward compatible implementations.
type UnimplementedGripGateHandoffServer struct{}

// SubmitAccept returns an Unimplemented error by default.
func (UnimplementedGripGateHandoffServer) SubmitAccept(GripGateHandoff_SubmitAcceptServer) error {
	return status.Errorf(codes.Unimplemented, "method SubmitAccept not implemented")
}

// RegisterGripGateHandoffServer registers the GripGateHandoff service with the given gRPC server.
func RegisterGripGateHandoffServer(s grpc.ServiceRegistrar, srv GripGateHandoffServer) {
	s.RegisterService(&_GripGateHandoff_serviceDesc, srv)
}

// GripGateHandoff_SubmitAcceptServer is the server-side stream for SubmitAccept.
type GripGateHandoff_SubmitAcceptServer interface {
	Send(*Ack) error
	Recv() (*Envelope, error)
	grpc.ServerStream
}

type gripGateHandoffSubmitAcceptServer struct {
	grpc.ServerStream
}

func (x *gripGateHandoffSubmitAcceptServer) Send(m *Ack) error {
	return x.ServerStream.SendMsg(m)
}

func (x *gripGateHandoffSubmitAcceptServer) Recv() (*Envelope, error) {
	m := new(Envelope)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _GripGateHandoff_SubmitAccept_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(GripGateHandoffServer).SubmitAccept(&gripGateHandoffSubmitAcceptServer{ServerStream: stream})
}

var _GripGateHandoff_serviceDesc = grpc.ServiceDesc{
	ServiceName: "gripgate.handoff.v1.GripGateHandoff",
	HandlerType: (*GripGateHandoffServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubmitAccept",
			Handler:       _GripGateHandoff_SubmitAccept_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "handoff.proto",
}
