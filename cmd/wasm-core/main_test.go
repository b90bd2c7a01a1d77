//go:build js && wasm

package main

import (
	"syscall/js"
	"testing"

	"github.com/miradorstack/signal-core/internal/boundary"
)

func TestDecodeArgSequences(t *testing.T) {
	floats := js.Global().Get("Float64Array").New(js.ValueOf([]any{1.0, 2.5, 4.0}))
	set := js.Global().Get("Set").New(js.ValueOf([]any{3.0, 1.0}))

	cases := []struct {
		name string
		in   js.Value
		want []float64
	}{
		{name: "array", in: js.ValueOf([]any{1.0, 2.0}), want: []float64{1, 2}},
		{name: "float64 array", in: floats, want: []float64{1, 2.5, 4}},
		{name: "set", in: set, want: []float64{3, 1}},
		{name: "empty", in: js.ValueOf([]any{}), want: []float64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := decodeArg("", tc.in)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			got, err := boundary.DecodeSeries(value)
			if err != nil {
				t.Fatalf("decode series: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("index %d: expected %v, got %v", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestNormalizeMetricSeriesExport(t *testing.T) {
	floats := js.Global().Get("Float64Array").New(js.ValueOf([]any{1.0, 2.0, 3.0}))
	out := normalizeMetricSeries(js.Undefined(), []js.Value{floats}).(js.Value)
	if out.Length() != 3 || out.Index(1).Float() != 0.5 {
		t.Fatalf("unexpected normalized output: %v", out)
	}
}

func TestNormalizeMetricSeriesRejectsObject(t *testing.T) {
	obj := js.ValueOf(map[string]any{"a": 1.0})
	out := normalizeMetricSeries(js.Undefined(), []js.Value{obj}).(js.Value)
	if !out.InstanceOf(js.Global().Get("Error")) {
		t.Fatalf("expected an Error, got %v", out)
	}
	if msg := out.Get("message").String(); msg != "invalid input: invalid type: map, expected a sequence" {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestCorrelateMetricSeriesExport(t *testing.T) {
	left := js.Global().Get("Float64Array").New(js.ValueOf([]any{1.0, 2.0, 3.0}))
	right := js.ValueOf([]any{2.0, 4.0, 6.0})
	coefficient, ok := correlateMetricSeries(js.Undefined(), []js.Value{left, right}).(float64)
	if !ok || coefficient < 0.999999 {
		t.Fatalf("expected perfect correlation, got %v", coefficient)
	}

	out := correlateMetricSeries(js.Undefined(), []js.Value{left, js.ValueOf("nope")})
	value, ok := out.(js.Value)
	if !ok || !value.InstanceOf(js.Global().Get("Error")) {
		t.Fatalf("expected an Error for a string right side, got %v", out)
	}
	want := `invalid right input: invalid type: string "nope", expected a sequence`
	if msg := value.Get("message").String(); msg != want {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestShapeResourceStatusExport(t *testing.T) {
	got := shapeResourceStatus(js.Undefined(), []js.Value{js.ValueOf("Pod"), js.ValueOf("Running")})
	if got != "running" {
		t.Fatalf("expected running, got %v", got)
	}
}
