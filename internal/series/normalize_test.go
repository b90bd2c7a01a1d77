package series

import (
	"math"
	"math/rand"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name   string
		input  []float64
		expect []float64
	}{
		{name: "empty", input: nil, expect: []float64{}},
		{name: "constant", input: []float64{5, 5, 5}, expect: []float64{0, 0, 0}},
		{name: "ascending", input: []float64{1, 2, 3}, expect: []float64{0, 0.5, 1}},
		{name: "unordered", input: []float64{10, 0, 5}, expect: []float64{1, 0, 0.5}},
		{name: "negative", input: []float64{-4, -2, 0}, expect: []float64{0, 0.5, 1}},
		{name: "single", input: []float64{42}, expect: []float64{0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if len(got) != len(tc.expect) {
				t.Fatalf("expected %d values, got %d", len(tc.expect), len(got))
			}
			for i := range got {
				if got[i] != tc.expect[i] {
					t.Fatalf("index %d: expected %v, got %v", i, tc.expect[i], got[i])
				}
			}
		})
	}
}

func TestNormalizeNearlyConstant(t *testing.T) {
	base := 0.5
	got := Normalize([]float64{base, math.Nextafter(base, 1)})
	for i, v := range got {
		if v != 0 {
			t.Fatalf("index %d: expected 0 for sub-epsilon range, got %v", i, v)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := []float64{3, 1, 2}
	Normalize(input)
	if input[0] != 3 || input[1] != 1 || input[2] != 2 {
		t.Fatalf("input mutated: %v", input)
	}
}

func TestNormalizeSkipsNaNForBounds(t *testing.T) {
	got := Normalize([]float64{math.NaN(), 0, 10})
	if !math.IsNaN(got[0]) {
		t.Fatalf("expected NaN to pass through, got %v", got[0])
	}
	if got[1] != 0 || got[2] != 1 {
		t.Fatalf("expected NaN to be ignored for min/max, got %v", got)
	}
}

func TestNormalizeAllNaN(t *testing.T) {
	// Both seeds survive, so the range is -Inf and every element stays NaN.
	got := Normalize([]float64{math.NaN(), math.NaN()})
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Fatalf("index %d: expected NaN, got %v", i, v)
		}
	}
}

func TestNormalizeUnitIntervalProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		n := 2 + rng.Intn(40)
		values := make([]float64, n)
		for i := range values {
			values[i] = (rng.Float64() - 0.5) * 2e6
		}
		lo, hi := 0, 0
		for i, v := range values {
			if v < values[lo] {
				lo = i
			}
			if v > values[hi] {
				hi = i
			}
		}
		if values[lo] == values[hi] {
			continue
		}

		got := Normalize(values)
		if len(got) != n {
			t.Fatalf("expected length %d, got %d", n, len(got))
		}
		for i, v := range got {
			if v < 0 || v > 1 {
				t.Fatalf("iteration %d index %d: %v outside [0,1]", iter, i, v)
			}
		}
		if got[lo] != 0 {
			t.Fatalf("iteration %d: minimum mapped to %v", iter, got[lo])
		}
		if got[hi] != 1 {
			t.Fatalf("iteration %d: maximum mapped to %v", iter, got[hi])
		}
	}
}
