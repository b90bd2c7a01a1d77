package services

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/miradorstack/signal-core/internal/api"
	"github.com/miradorstack/signal-core/internal/boundary"
	"github.com/miradorstack/signal-core/internal/diag"
	"github.com/miradorstack/signal-core/internal/metrics"
	"github.com/miradorstack/signal-core/internal/status"
	"github.com/miradorstack/signal-core/internal/utils"
)

// latencyLogEvery controls how often the rolling p95 is logged per operation.
const latencyLogEvery = 500

// SignalService implements the gRPC SignalCore service on top of the
// boundary adapter.
type SignalService struct {
	logger     *slog.Logger
	classifier atomic.Pointer[status.Classifier]
	latencies  map[string]*utils.LatencyTracker
	calls      atomic.Int64
}

var _ api.SignalCoreServer = (*SignalService)(nil)

// NewSignalService constructs the service. A nil classifier uses the built-in
// status rules.
func NewSignalService(logger *slog.Logger, classifier *status.Classifier) *SignalService {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = status.DefaultClassifier()
	}
	s := &SignalService{
		logger: logger,
		latencies: map[string]*utils.LatencyTracker{
			metrics.OpNormalize: utils.NewLatencyTracker(1024),
			metrics.OpCorrelate: utils.NewLatencyTracker(1024),
			metrics.OpShape:     utils.NewLatencyTracker(1024),
		},
	}
	s.classifier.Store(classifier)
	return s
}

// SetClassifier swaps the status rules used by ShapeResourceStatus. Nil is ignored.
func (s *SignalService) SetClassifier(c *status.Classifier) {
	if c == nil {
		return
	}
	s.classifier.Store(c)
}

// NormalizeMetricSeries min-max normalizes the request series.
func (s *SignalService) NormalizeMetricSeries(ctx context.Context, req *structpb.Value) (*structpb.Value, error) {
	defer diag.Recover(metrics.OpNormalize)
	if req == nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "request cannot be nil")
	}

	start := time.Now()
	out, err := boundary.NormalizeMetricSeries(req)
	s.observe(metrics.OpNormalize, time.Since(start), err)
	if err != nil {
		return nil, s.toStatus(metrics.OpNormalize, err)
	}
	metrics.ObserveSeriesLength(metrics.OpNormalize, len(out.GetListValue().GetValues()))
	return out, nil
}

// CorrelateMetricSeries returns the Pearson correlation of the left and right
// request fields.
func (s *SignalService) CorrelateMetricSeries(ctx context.Context, req *structpb.Struct) (*wrapperspb.DoubleValue, error) {
	defer diag.Recover(metrics.OpCorrelate)
	if req == nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "request cannot be nil")
	}

	left, right := api.FromCorrelateRequest(req)
	start := time.Now()
	coefficient, err := boundary.CorrelateMetricSeries(left, right)
	s.observe(metrics.OpCorrelate, time.Since(start), err)
	if err != nil {
		return nil, s.toStatus(metrics.OpCorrelate, err)
	}
	metrics.ObserveSeriesLength(metrics.OpCorrelate, len(left.GetListValue().GetValues()))
	return wrapperspb.Double(coefficient), nil
}

// ShapeResourceStatus labels the kind/status request fields.
func (s *SignalService) ShapeResourceStatus(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	defer diag.Recover(metrics.OpShape)
	if req == nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "request cannot be nil")
	}

	start := time.Now()
	label := s.classifier.Load().Shape(api.FromShapeRequest(req))
	s.observe(metrics.OpShape, time.Since(start), nil)
	return wrapperspb.String(string(label)), nil
}

// LatencyP95 returns the current p95 latency for operation.
func (s *SignalService) LatencyP95(operation string) time.Duration {
	tracker, ok := s.latencies[operation]
	if !ok {
		return 0
	}
	return tracker.Percentile(95)
}

func (s *SignalService) observe(operation string, duration time.Duration, err error) {
	metrics.ObserveCall(operation, duration, outcome(err))
	if err != nil {
		return
	}
	s.latencies[operation].Observe(duration)
	if n := s.calls.Add(1); n%latencyLogEvery == 0 {
		s.logger.Info("signal core latency",
			slog.String("operation", operation),
			slog.Duration("p95", s.LatencyP95(operation)),
			slog.Int64("calls", n),
		)
	}
}

func (s *SignalService) toStatus(operation string, err error) error {
	var decodeErr *boundary.DecodeError
	if errors.As(err, &decodeErr) {
		s.logger.Debug("rejected host input", slog.String("operation", operation), slog.String("side", decodeErr.Side), slog.Any("error", err))
		return grpcstatus.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Error("signal core call failed", slog.String("operation", operation), slog.Any("error", err))
	return grpcstatus.Error(codes.Internal, err.Error())
}

func outcome(err error) string {
	var decodeErr *boundary.DecodeError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &decodeErr):
		return metrics.OutcomeDecodeError
	default:
		// The boundary only fails on decode or encode.
		return metrics.OutcomeEncodeError
	}
}
