package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(reg); err != nil {
		t.Fatalf("second register should tolerate duplicates, got %v", err)
	}
}

func TestObserveCall(t *testing.T) {
	before := testutil.ToFloat64(callsTotal.WithLabelValues(OpCorrelate, OutcomeDecodeError))
	ObserveCall(OpCorrelate, time.Millisecond, OutcomeDecodeError)
	if got := testutil.ToFloat64(callsTotal.WithLabelValues(OpCorrelate, OutcomeDecodeError)); got != before+1 {
		t.Fatalf("expected decode error counter %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(callsTotal.WithLabelValues(OpShape, OutcomeSuccess))
	ObserveCall(OpShape, -time.Second, "anything-else")
	if got := testutil.ToFloat64(callsTotal.WithLabelValues(OpShape, OutcomeSuccess)); got != before+1 {
		t.Fatalf("expected unknown outcomes to count as success")
	}
}

func TestObserveRuleReload(t *testing.T) {
	before := testutil.ToFloat64(ruleReloadsTotal.WithLabelValues("error"))
	ObserveRuleReload(errors.New("bad yaml"))
	if got := testutil.ToFloat64(ruleReloadsTotal.WithLabelValues("error")); got != before+1 {
		t.Fatalf("expected reload error counter %v, got %v", before+1, got)
	}
}

func TestObserveSeriesLength(t *testing.T) {
	ObserveSeriesLength(OpNormalize, 12)
	if n := testutil.CollectAndCount(seriesLength); n == 0 {
		t.Fatalf("expected series length histogram to expose samples")
	}
}
