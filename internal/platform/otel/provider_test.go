package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/portfolio/internal/platform/otel"
)

func TestConfigActive(t *testing.T) {
	tests := []struct {
		name string
		cfg  otel.Config
		want bool
	}{
		{name: "empty", cfg: otel.Config{}, want: false},
		{name: "endpoint", cfg: otel.Config{Endpoint: "http://localhost:4318"}, want: true},
		{name: "disabled", cfg: otel.Config{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
		{name: "blank endpoint", cfg: otel.Config{Endpoint: "   ", Enabled: "true"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Active(); got != tt.want {
				t.Fatalf("Active() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("PORTFOLIO_OTEL_ENDPOINT", "")
	t.Setenv("PORTFOLIO_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("PORTFOLIO_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("PORTFOLIO_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	t.Setenv("PORTFOLIO_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("PORTFOLIO_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
