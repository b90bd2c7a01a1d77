//go:build js && wasm

// Command wasm-core exposes the signal core to a JavaScript host as the
// global functions normalize_metric_series, correlate_metric_series and
// shape_resource_status.
//
// Go callbacks cannot throw into JavaScript, so failures are returned as
// Error instances; callers check `result instanceof Error`.
package main

import (
	"fmt"
	"os"
	"syscall/js"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/miradorstack/signal-core/internal/boundary"
	"github.com/miradorstack/signal-core/internal/diag"
	"github.com/miradorstack/signal-core/internal/utils"
)

func main() {
	diag.Install(utils.NewLoggerTo(os.Stderr, "error", false))

	exports := map[string]js.Func{
		"normalize_metric_series": js.FuncOf(normalizeMetricSeries),
		"correlate_metric_series": js.FuncOf(correlateMetricSeries),
		"shape_resource_status":   js.FuncOf(shapeResourceStatus),
	}
	for name, fn := range exports {
		js.Global().Set(name, fn)
	}

	select {}
}

func normalizeMetricSeries(_ js.Value, args []js.Value) any {
	defer diag.Recover("normalize_metric_series")

	values, err := decodeArg("", arg(args, 0))
	if err != nil {
		return jsError(err)
	}
	out, err := boundary.NormalizeMetricSeries(values)
	if err != nil {
		return jsError(err)
	}
	return js.ValueOf(out.AsInterface())
}

func correlateMetricSeries(_ js.Value, args []js.Value) any {
	defer diag.Recover("correlate_metric_series")

	left, err := decodeArg(boundary.SideLeft, arg(args, 0))
	if err != nil {
		return jsError(err)
	}
	right, err := decodeArg(boundary.SideRight, arg(args, 1))
	if err != nil {
		return jsError(err)
	}
	coefficient, err := boundary.CorrelateMetricSeries(left, right)
	if err != nil {
		return jsError(err)
	}
	return coefficient
}

func shapeResourceStatus(_ js.Value, args []js.Value) any {
	defer diag.Recover("shape_resource_status")

	return boundary.ShapeResourceStatus(text(arg(args, 0)), text(arg(args, 1)))
}

func arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}

// decodeArg converts a JS value into its dynamic protobuf form. Conversion
// failures surface as the same DecodeError the boundary would return.
func decodeArg(side string, v js.Value) (*structpb.Value, error) {
	native, err := toNative(v)
	if err == nil {
		var value *structpb.Value
		if value, err = boundary.FromNative(native); err == nil {
			return value, nil
		}
	}
	return nil, &boundary.DecodeError{Side: side, Err: err}
}

func toNative(v js.Value) (any, error) {
	switch v.Type() {
	case js.TypeUndefined, js.TypeNull:
		return nil, nil
	case js.TypeBoolean:
		return v.Bool(), nil
	case js.TypeNumber:
		return v.Float(), nil
	case js.TypeString:
		return v.String(), nil
	case js.TypeObject:
		if seq, ok := sequence(v); ok {
			out := make([]any, seq.Length())
			for i := range out {
				item, err := toNative(seq.Index(i))
				if err != nil {
					return nil, err
				}
				out[i] = item
			}
			return out, nil
		}
		keys := js.Global().Get("Object").Call("keys", v)
		out := make(map[string]any, keys.Length())
		for i := 0; i < keys.Length(); i++ {
			key := keys.Index(i).String()
			item, err := toNative(v.Get(key))
			if err != nil {
				return nil, err
			}
			out[key] = item
		}
		return out, nil
	default:
		return nil, fmt.Errorf("invalid type: %s", v.Type())
	}
}

// sequence reports whether v decodes as a list: plain arrays as they are,
// other iterables (typed arrays, sets) copied out through Array.from.
func sequence(v js.Value) (js.Value, bool) {
	array := js.Global().Get("Array")
	if array.Call("isArray", v).Bool() {
		return v, true
	}
	iterator := js.Global().Get("Symbol").Get("iterator")
	if js.Global().Get("Reflect").Call("get", v, iterator).Type() == js.TypeFunction {
		return array.Call("from", v), true
	}
	return js.Value{}, false
}

func text(v js.Value) string {
	if v.Type() == js.TypeString {
		return v.String()
	}
	return ""
}

func jsError(err error) any {
	return js.Global().Get("Error").New(err.Error())
}
