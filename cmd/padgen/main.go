// Package main generates random response padding from the command line.
//
// Output can be pasted into fixtures or piped into other tooling; the same
// generator backs the random_padding template filter.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	padgencmd "github.com/whistlebox/webfilters/internal/cmd/padgen"
	"github.com/whistlebox/webfilters/internal/platform/config"
	apperrors "github.com/whistlebox/webfilters/internal/platform/errors"
)

func main() {
	cfg, err := padgencmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PADGEN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := padgencmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.ExitCodef(apperrors.CodeOf(err).ExitCode(), "[PADGEN] %v", err)
	}
}
