// Command smoke drives a locally running signal-core over gRPC with sample
// series so the three RPCs can be checked by hand.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/miradorstack/signal-core/internal/api"
	"github.com/miradorstack/signal-core/internal/boundary"
)

func main() {
	addr := flag.String("addr", "localhost:50061", "signal-core gRPC address")
	left := flag.String("left", "[1, 5.5, 9.2, 3]", "JSON array for the left series")
	right := flag.String("right", "[2, 6, 10, 2.5]", "JSON array for the right series")
	kind := flag.String("kind", "pod", "resource kind")
	text := flag.String("status", "CrashLoopBackOff", "resource status text")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("dial %s: %v", *addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client := api.NewSignalCoreClient(conn)

	leftValue := mustParse(*left)
	rightValue := mustParse(*right)

	normalized, err := client.NormalizeMetricSeries(ctx, leftValue)
	if err != nil {
		log.Fatalf("normalize: %v", err)
	}
	fmt.Printf("normalize %s -> %v\n", *left, normalized.AsInterface())

	coefficient, err := client.CorrelateMetricSeries(ctx, api.NewCorrelateRequest(leftValue, rightValue))
	if err != nil {
		log.Fatalf("correlate: %v", err)
	}
	fmt.Printf("correlate %s %s -> %.6f\n", *left, *right, coefficient.GetValue())

	label, err := client.ShapeResourceStatus(ctx, api.NewShapeRequest(*kind, *text))
	if err != nil {
		log.Fatalf("shape: %v", err)
	}
	fmt.Printf("shape %s %q -> %s\n", *kind, *text, label.GetValue())
}

func mustParse(raw string) *structpb.Value {
	var native any
	if err := json.Unmarshal([]byte(raw), &native); err != nil {
		log.Fatalf("parse %q: %v", raw, err)
	}
	value, err := boundary.FromNative(native)
	if err != nil {
		log.Fatalf("convert %q: %v", raw, err)
	}
	return value
}
