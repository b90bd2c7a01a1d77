package api

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/miradorstack/signal-core/internal/status"
)

// Struct field names carried by the two-argument RPCs.
const (
	FieldLeft   = "left"
	FieldRight  = "right"
	FieldKind   = "kind"
	FieldStatus = "status"
)

// NewCorrelateRequest packs two series into a CorrelateMetricSeries request.
func NewCorrelateRequest(left, right *structpb.Value) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldLeft:  left,
		FieldRight: right,
	}}
}

// FromCorrelateRequest unpacks a CorrelateMetricSeries request. Absent fields
// come back nil and fail decoding as null.
func FromCorrelateRequest(req *structpb.Struct) (left, right *structpb.Value) {
	fields := req.GetFields()
	return fields[FieldLeft], fields[FieldRight]
}

// NewShapeRequest packs a resource shape into a ShapeResourceStatus request.
func NewShapeRequest(kind, text string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldKind:   structpb.NewStringValue(kind),
		FieldStatus: structpb.NewStringValue(text),
	}}
}

// FromShapeRequest unpacks a ShapeResourceStatus request. Non-string fields
// read as empty text, which classifies as a warning.
func FromShapeRequest(req *structpb.Struct) status.ResourceShape {
	fields := req.GetFields()
	return status.ResourceShape{
		Kind:   fields[FieldKind].GetStringValue(),
		Status: fields[FieldStatus].GetStringValue(),
	}
}
