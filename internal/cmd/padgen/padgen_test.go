package padgen

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"strings"
	"testing"

	"github.com/whistlebox/webfilters/internal/padding"
	apperrors "github.com/whistlebox/webfilters/internal/platform/errors"
	"github.com/whistlebox/webfilters/internal/random"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("padgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ChunkCount != 1 {
		t.Fatalf("expected default chunk count 1, got %d", cfg.ChunkCount)
	}
	if cfg.MaxSize != padding.DefaultMaxSize {
		t.Fatalf("expected default max size %d, got %d", padding.DefaultMaxSize, cfg.MaxSize)
	}
	if cfg.Format != FormatLines {
		t.Fatalf("expected default format %q, got %q", FormatLines, cfg.Format)
	}
	if cfg.FieldName != "pad" {
		t.Fatalf("expected default field %q, got %q", "pad", cfg.FieldName)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("WHISTLEBOX_PADGEN_CHUNKS", "4")
	t.Setenv("WHISTLEBOX_PADGEN_FORMAT", "JSON")

	fs := flag.NewFlagSet("padgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-max-size", "512"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ChunkCount != 4 {
		t.Fatalf("expected env chunk count 4, got %d", cfg.ChunkCount)
	}
	if cfg.MaxSize != 512 {
		t.Fatalf("expected flag max size 512, got %d", cfg.MaxSize)
	}
	if cfg.Format != FormatJSON {
		t.Fatalf("expected normalized format %q, got %q", FormatJSON, cfg.Format)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("WHISTLEBOX_PADGEN_CHUNKS", "many")

	fs := flag.NewFlagSet("padgen", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestGenerateFormats(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		check func(t *testing.T, out string)
	}{
		{
			name: "lines",
			cfg:  Config{ChunkCount: 3, MaxSize: 100, Format: FormatLines},
			check: func(t *testing.T, out string) {
				lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
				if len(lines) != 3 {
					t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
				}
				for _, line := range lines {
					if line == "" {
						t.Fatalf("expected non-empty chunk line in %q", out)
					}
				}
			},
		},
		{
			name: "json",
			cfg:  Config{ChunkCount: 2, MaxSize: 100, Format: FormatJSON},
			check: func(t *testing.T, out string) {
				var payload struct {
					Chunks []string `json:"chunks"`
				}
				if err := json.Unmarshal([]byte(out), &payload); err != nil {
					t.Fatalf("decode json: %v", err)
				}
				if len(payload.Chunks) != 2 {
					t.Fatalf("expected 2 chunks, got %d", len(payload.Chunks))
				}
			},
		},
		{
			name: "html",
			cfg:  Config{ChunkCount: 2, MaxSize: 100, Format: FormatHTML, FieldName: "pad"},
			check: func(t *testing.T, out string) {
				if strings.Count(out, `<input type="hidden"`) != 2 {
					t.Fatalf("expected 2 hidden inputs, got %q", out)
				}
				if !strings.Contains(out, `name="pad_0"`) || !strings.Contains(out, `name="pad_1"`) {
					t.Fatalf("expected indexed field names, got %q", out)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			gen := padding.New(random.NewSeeded(3))
			if err := generate(context.Background(), gen, tc.cfg, &out); err != nil {
				t.Fatalf("generate: %v", err)
			}
			tc.check(t, out.String())
		})
	}
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := generate(context.Background(), padding.New(random.NewSeeded(1)), Config{ChunkCount: 1, MaxSize: 10, Format: "xml"}, &out)
	if got := apperrors.CodeOf(err); got != apperrors.CodeCommandInvalidFormat {
		t.Fatalf("expected code %q, got %q (%v)", apperrors.CodeCommandInvalidFormat, got, err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestGenerateInvalidSizeExitsWithUsageCode(t *testing.T) {
	var out bytes.Buffer
	err := generate(context.Background(), padding.New(random.NewSeeded(1)), Config{ChunkCount: 3, MaxSize: 2, Format: FormatLines}, &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := apperrors.CodeOf(err).ExitCode(); got != 2 {
		t.Fatalf("expected exit code 2, got %d", got)
	}
}

func TestRunWritesPadding(t *testing.T) {
	t.Setenv("WHISTLEBOX_OTEL_ENDPOINT", "")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{ChunkCount: 2, MaxSize: 64, Format: FormatLines}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Count(out.String(), "\n") != 2 {
		t.Fatalf("expected two lines, got %q", out.String())
	}
}
