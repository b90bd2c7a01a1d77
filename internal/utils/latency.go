package utils

import (
	"slices"
	"sync"
	"time"
)

// LatencyTracker keeps the most recent call durations in a fixed-size ring
// and reports percentiles over them.
type LatencyTracker struct {
	mu      sync.Mutex
	samples []time.Duration
	next    int
	full    bool
}

// NewLatencyTracker creates a tracker retaining up to size samples.
func NewLatencyTracker(size int) *LatencyTracker {
	if size <= 0 {
		size = 512
	}
	return &LatencyTracker{samples: make([]time.Duration, size)}
}

// Observe records a duration, overwriting the oldest sample once full.
func (l *LatencyTracker) Observe(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.samples[l.next] = d
	l.next++
	if l.next == len(l.samples) {
		l.next = 0
		l.full = true
	}
}

// Count returns the number of retained samples.
func (l *LatencyTracker) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count()
}

// Percentile returns the p-th percentile (0-100) of retained samples, or
// zero when nothing has been observed.
func (l *LatencyTracker) Percentile(p float64) time.Duration {
	l.mu.Lock()
	sorted := slices.Clone(l.samples[:l.count()])
	l.mu.Unlock()

	if len(sorted) == 0 {
		return 0
	}
	slices.Sort(sorted)

	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[len(sorted)-1]
	}
	return sorted[int((p/100.0)*float64(len(sorted)-1))]
}

func (l *LatencyTracker) count() int {
	if l.full {
		return len(l.samples)
	}
	return l.next
}
