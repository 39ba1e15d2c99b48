// Command voxprep is the CLI entrypoint for the per-stream audio/vision
// variant extractor.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the extraction pipeline: probe → estimate →
// confirm → extract.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/voxprep/voxprep/internal/check"
	"github.com/voxprep/voxprep/internal/config"
	"github.com/voxprep/voxprep/internal/display"
	"github.com/voxprep/voxprep/internal/logging"
	"github.com/voxprep/voxprep/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file
	// capture.
	cfg := config.DefaultConfig()
	if err := config.LoadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "voxprep: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "voxprep: %v\n", err)
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintln(os.Stderr, "usage: voxprep [OPTIONS] <input_video>  (see --help)")
		}
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "voxprep: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voxprep: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	log.Info("=== voxprep v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputPath)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
	log.Info("")

	// Fail fast if ffmpeg/ffprobe are unavailable.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between invocations without leaving partial output
	// for the current stream.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current invocation…")
		cancel()
	}()

	// Phase 4: Run the pipeline.
	stats, err := pipeline.NewRunner(&cfg, log).Run(ctx)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
