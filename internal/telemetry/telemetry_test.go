package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestHoneycombHeaders(t *testing.T) {
	tests := []struct {
		key, dataset string
		want         string
	}{
		{"abc", "games", "x-honeycomb-team=abc,x-honeycomb-dataset=games"},
		{"abc", "", "x-honeycomb-team=abc,x-honeycomb-dataset=2048"},
	}
	for _, tt := range tests {
		if got := honeycombHeaders(tt.key, tt.dataset); got != tt.want {
			t.Errorf("honeycombHeaders(%q, %q) = %q, want %q", tt.key, tt.dataset, got, tt.want)
		}
	}
}

func TestConfigureHoneycombEnv(t *testing.T) {
	t.Setenv(endpointEnv, "")
	t.Setenv(headersEnv, "")
	t.Setenv(honeycombKeyEnv, "secret")
	t.Setenv(honeycombSetEnv, "")

	ConfigureHoneycombEnv()

	if !Enabled() {
		t.Fatal("Enabled() = false after ConfigureHoneycombEnv with a key")
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=2048"
	if got := os.Getenv(headersEnv); got != want {
		t.Errorf("%s = %q, want %q", headersEnv, got, want)
	}
}

func TestSetupDisabled(t *testing.T) {
	t.Setenv(endpointEnv, "")

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}
}

func TestTracersStartSpans(t *testing.T) {
	ctx := context.Background()
	_, span := Tracer("test").Start(ctx, "test.span")
	span.End()
	_, span = NoopTracer().Start(ctx, "test.noop")
	if span.SpanContext().IsValid() {
		t.Error("NoopTracer span should not carry a valid span context")
	}
	span.End()
}
