package api

import (
	"testing"

	"google.golang.org/protobuf/types/known/structpb"
)

func TestCorrelateRequestRoundTrip(t *testing.T) {
	left := structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{structpb.NewNumberValue(1)}})
	right := structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{structpb.NewNumberValue(2)}})

	gotLeft, gotRight := FromCorrelateRequest(NewCorrelateRequest(left, right))
	if gotLeft != left || gotRight != right {
		t.Fatalf("expected fields to be carried through unchanged")
	}
}

func TestFromCorrelateRequestNil(t *testing.T) {
	left, right := FromCorrelateRequest(nil)
	if left != nil || right != nil {
		t.Fatalf("expected nil fields for nil request")
	}
}

func TestFromShapeRequest(t *testing.T) {
	shape := FromShapeRequest(NewShapeRequest("Pod", "Running"))
	if shape.Kind != "Pod" || shape.Status != "Running" {
		t.Fatalf("unexpected shape: %+v", shape)
	}

	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldKind:   structpb.NewNumberValue(3),
		FieldStatus: structpb.NewStringValue("pending"),
	}}
	shape = FromShapeRequest(req)
	if shape.Kind != "" || shape.Status != "pending" {
		t.Fatalf("expected non-string kind to read as empty, got %+v", shape)
	}
}
