package otel

import (
	"context"
	"os"
	"strings"
	"testing"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("WHISTLEBOX_OTEL_ENDPOINT", "")
	t.Setenv("WHISTLEBOX_OTEL_ENABLED", "true")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("WHISTLEBOX_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("WHISTLEBOX_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Use a non-routable address so no actual export happens.
	t.Setenv("WHISTLEBOX_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("WHISTLEBOX_OTEL_ENABLED", "true")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsMalformedSettings(t *testing.T) {
	t.Setenv("WHISTLEBOX_OTEL_SAMPLE_RATIO", "half")

	if _, err := Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected settings error")
	} else if !strings.Contains(err.Error(), "load otel settings") {
		t.Fatalf("expected settings prefix, got %v", err)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	unsetEnv(t, "WHISTLEBOX_OTEL_ENABLED", "WHISTLEBOX_OTEL_SAMPLE_RATIO")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !s.Enabled {
		t.Fatal("expected tracing enabled by default")
	}
	if s.SampleRatio != 1 {
		t.Fatalf("expected default ratio 1, got %v", s.SampleRatio)
	}
}

func TestSettingsSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 1, want: "AlwaysOnSampler"},
		{ratio: 0, want: "AlwaysOffSampler"},
		{ratio: 0.25, want: "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range tests {
		got := Settings{SampleRatio: tc.ratio}.sampler().Description()
		if !strings.Contains(got, tc.want) {
			t.Fatalf("sampler(%v) = %q, expected it to contain %q", tc.ratio, got, tc.want)
		}
	}
}
