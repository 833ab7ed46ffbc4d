package telemetry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

func TestRunIDIsUUID(t *testing.T) {
	if _, err := uuid.Parse(RunID()); err != nil {
		t.Errorf("RunID() = %q is not a UUID: %v", RunID(), err)
	}
	if RunID() != RunID() {
		t.Error("RunID() should be stable within a process")
	}
}

func TestResourceAttributes(t *testing.T) {
	want := map[attribute.Key]string{
		"service.name":        "fieldsim",
		"service.instance.id": RunID(),
	}

	got := make(map[attribute.Key]string)
	for _, kv := range resourceAttributes() {
		got[kv.Key] = kv.Value.AsString()
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("%s = %q, want %q", key, got[key], value)
		}
	}
	if got["host.name"] == "" {
		t.Error("host.name should never be empty")
	}

	res, err := newResource(context.Background())
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	if res.Len() != len(resourceAttributes()) {
		t.Errorf("resource has %d attributes, want %d", res.Len(), len(resourceAttributes()))
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("spans before Setup should not be recorded")
	}
}
