package api

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/miradorstack/signal-core/internal/config"
)

type idleService struct{}

func (idleService) NormalizeMetricSeries(context.Context, *structpb.Value) (*structpb.Value, error) {
	return structpb.NewListValue(&structpb.ListValue{}), nil
}

func (idleService) CorrelateMetricSeries(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error) {
	return wrapperspb.Double(0), nil
}

func (idleService) ShapeResourceStatus(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("warning"), nil
}

func TestServeReturnsAfterStop(t *testing.T) {
	lis := bufconn.Listen(1 << 16)
	server := NewServerWithListener(config.ServerConfig{GracefulTimeout: time.Second}, lis, idleService{})

	served := make(chan error, 1)
	go func() { served <- server.Serve() }()
	time.Sleep(50 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		server.Stop(context.Background())
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatalf("Stop did not return")
	}
	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Serve did not return after Stop")
	}
}

func TestServeWithoutListener(t *testing.T) {
	var server Server
	if err := server.Serve(); err == nil {
		t.Fatalf("expected error serving an uninitialised server")
	}
	server.Stop(context.Background())
}
