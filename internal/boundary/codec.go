package boundary

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// DecodeSeries converts a dynamic list value into a float64 series. Every
// element must be a number; anything else fails with the offending index.
func DecodeSeries(v *structpb.Value) ([]float64, error) {
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("invalid type: %s, expected a sequence", kindName(v))
	}

	items := list.ListValue.GetValues()
	out := make([]float64, len(items))
	for i, item := range items {
		num, ok := item.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("invalid type: %s at index %d, expected f64", kindName(item), i)
		}
		out[i] = num.NumberValue
	}
	return out, nil
}

// EncodeSeries converts a float64 series into a dynamic list value.
func EncodeSeries(values []float64) (*structpb.Value, error) {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	list, err := structpb.NewList(items)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return structpb.NewListValue(list), nil
}

// FromNative converts a native Go value, as produced by encoding/json or a
// JavaScript bridge, into its dynamic form.
func FromNative(v any) (*structpb.Value, error) {
	if values, ok := v.([]float64); ok {
		return EncodeSeries(values)
	}
	value, err := structpb.NewValue(v)
	if err != nil {
		return nil, fmt.Errorf("unsupported host value: %w", err)
	}
	return value, nil
}

func kindName(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return "null"
	case *structpb.Value_BoolValue:
		return "boolean"
	case *structpb.Value_NumberValue:
		return "number"
	case *structpb.Value_StringValue:
		return fmt.Sprintf("string %q", v.GetStringValue())
	case *structpb.Value_ListValue:
		return "sequence"
	case *structpb.Value_StructValue:
		return "map"
	default:
		return "unknown"
	}
}
