// Package padgen parses padgen command flags and writes generated padding.
package padgen

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/whistlebox/webfilters/internal/padding"
	entrypoint "github.com/whistlebox/webfilters/internal/platform/cmd"
	apperrors "github.com/whistlebox/webfilters/internal/platform/errors"
	"github.com/whistlebox/webfilters/internal/services/web/templates"
)

// Output formats.
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatHTML  = "html"
)

const tracerName = "github.com/whistlebox/webfilters/internal/cmd/padgen"

// Config holds padgen command configuration.
type Config struct {
	ChunkCount int    `env:"WHISTLEBOX_PADGEN_CHUNKS" envDefault:"1"`
	MaxSize    int    `env:"WHISTLEBOX_PADGEN_MAX_SIZE" envDefault:"1048576"`
	Format     string `env:"WHISTLEBOX_PADGEN_FORMAT" envDefault:"lines"`
	FieldName  string `env:"WHISTLEBOX_PADGEN_FIELD" envDefault:"pad"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.ChunkCount, "chunks", cfg.ChunkCount, "Number of padding chunks")
	fs.IntVar(&cfg.MaxSize, "max-size", cfg.MaxSize, "Upper bound on total padding characters")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: lines, json or html")
	fs.StringVar(&cfg.FieldName, "field", cfg.FieldName, "Hidden field name prefix for html output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return cfg, nil
}

// Run generates padding and writes it to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePadgen, func(ctx context.Context) error {
		return generate(ctx, padding.NewSecure(), cfg, out)
	})
}

func generate(ctx context.Context, gen *padding.Generator, cfg Config, out io.Writer) error {
	if err := validateFormat(cfg.Format); err != nil {
		return err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "padgen.generate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("padding.chunk_count", cfg.ChunkCount),
		attribute.Int("padding.max_size", cfg.MaxSize),
	)

	chunks, err := gen.Generate(cfg.ChunkCount, cfg.MaxSize)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("generate padding: %w", err)
	}
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	span.SetAttributes(attribute.Int("padding.size", total))

	if err := write(ctx, out, cfg, chunks); err != nil {
		return fmt.Errorf("write padding: %w", err)
	}
	log.Printf("generated %d chunks, %s of padding", len(chunks), humanize.IBytes(uint64(total)))
	return nil
}

func validateFormat(format string) error {
	switch format {
	case FormatLines, FormatJSON, FormatHTML:
		return nil
	default:
		return apperrors.WithMetadata(apperrors.CodeCommandInvalidFormat, fmt.Sprintf("unknown output format %q", format), map[string]string{
			"format": format,
		})
	}
}

func write(ctx context.Context, out io.Writer, cfg Config, chunks []string) error {
	switch cfg.Format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		return enc.Encode(struct {
			Chunks []string `json:"chunks"`
		}{Chunks: chunks})
	case FormatHTML:
		if err := templates.PaddingFields(cfg.FieldName, chunks).Render(ctx, out); err != nil {
			return err
		}
		_, err := io.WriteString(out, "\n")
		return err
	default:
		for _, chunk := range chunks {
			if _, err := io.WriteString(out, chunk+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
}
