package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv(endpointEnv, "")

	if Enabled() {
		t.Fatal("telemetry should be disabled without an endpoint")
	}
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestTracerWithoutProvider(t *testing.T) {
	// Without Setup the global provider is the no-op default.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("spans should be no-ops before telemetry is set up")
	}
}
