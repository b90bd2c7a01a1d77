package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "mirador.signalcore.v1.SignalCore"

const (
	normalizeMethod = "/" + ServiceName + "/NormalizeMetricSeries"
	correlateMethod = "/" + ServiceName + "/CorrelateMetricSeries"
	shapeMethod     = "/" + ServiceName + "/ShapeResourceStatus"
)

// SignalCoreServer is the server API for the SignalCore service. Requests and
// responses are protobuf well-known types so hosts can pass dynamic values.
type SignalCoreServer interface {
	NormalizeMetricSeries(context.Context, *structpb.Value) (*structpb.Value, error)
	CorrelateMetricSeries(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error)
	ShapeResourceStatus(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
}

// RegisterSignalCoreServer attaches srv to a gRPC service registrar.
func RegisterSignalCoreServer(s grpc.ServiceRegistrar, srv SignalCoreServer) {
	s.RegisterService(&signalCoreServiceDesc, srv)
}

var signalCoreServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SignalCoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NormalizeMetricSeries", Handler: normalizeHandler},
		{MethodName: "CorrelateMetricSeries", Handler: correlateHandler},
		{MethodName: "ShapeResourceStatus", Handler: shapeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mirador/signalcore/v1/signalcore.proto",
}

func normalizeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SignalCoreServer).NormalizeMetricSeries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: normalizeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SignalCoreServer).NormalizeMetricSeries(ctx, req.(*structpb.Value))
	}
	return interceptor(ctx, in, info, handler)
}

func correlateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SignalCoreServer).CorrelateMetricSeries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: correlateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SignalCoreServer).CorrelateMetricSeries(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func shapeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SignalCoreServer).ShapeResourceStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: shapeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SignalCoreServer).ShapeResourceStatus(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// SignalCoreClient is a thin client for the SignalCore service.
type SignalCoreClient struct {
	cc grpc.ClientConnInterface
}

// NewSignalCoreClient wraps an established connection.
func NewSignalCoreClient(cc grpc.ClientConnInterface) *SignalCoreClient {
	return &SignalCoreClient{cc: cc}
}

// NormalizeMetricSeries calls the NormalizeMetricSeries RPC.
func (c *SignalCoreClient) NormalizeMetricSeries(ctx context.Context, in *structpb.Value, opts ...grpc.CallOption) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, normalizeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CorrelateMetricSeries calls the CorrelateMetricSeries RPC.
func (c *SignalCoreClient) CorrelateMetricSeries(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error) {
	out := new(wrapperspb.DoubleValue)
	if err := c.cc.Invoke(ctx, correlateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ShapeResourceStatus calls the ShapeResourceStatus RPC.
func (c *SignalCoreClient) ShapeResourceStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, shapeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
