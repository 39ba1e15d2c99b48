// Package pipeline orchestrates one extraction run: precondition checks,
// probe, estimate, confirmation gate, sequential per-stream extraction,
// and the summary report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/voxprep/voxprep/internal/config"
	"github.com/voxprep/voxprep/internal/display"
	"github.com/voxprep/voxprep/internal/ffmpeg"
	"github.com/voxprep/voxprep/internal/logging"
	"github.com/voxprep/voxprep/internal/planner"
)

// Sentinel errors for the precondition checks. All are detected before any
// external invocation and are fatal (no retry, exit code 1).
var (
	ErrInputNotFile     = errors.New("input path is not a regular file")
	ErrOutputDirMissing = errors.New("output directory does not exist")
)

// Runner holds the collaborators for one extraction run. Probe, Transcode
// and Confirm are injectable for tests; NewRunner wires the production
// implementations.
type Runner struct {
	Cfg       *config.Config
	Log       *logging.Logger
	Probe     Prober
	Transcode Transcoder
	Confirm   Confirmer
}

// NewRunner returns a Runner wired to ffprobe, ffmpeg, and stdin.
func NewRunner(cfg *config.Config, log *logging.Logger) *Runner {
	return &Runner{
		Cfg:       cfg,
		Log:       log,
		Probe:     ffprobeProber{},
		Transcode: ffmpegTranscoder{},
		Confirm:   StdinConfirmer,
	}
}

// Run executes the full flow. A declined confirmation returns success with
// stats.Declined set; precondition failures return a sentinel error. A
// failed ffmpeg invocation is counted in stats.Failed and the run
// continues with the next stream — completed outputs are never rolled back.
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats
	cfg := r.Cfg
	log := r.Log

	// --- Preconditions (before any external invocation) ---
	fi, err := os.Stat(cfg.InputPath)
	if err != nil || !fi.Mode().IsRegular() {
		return stats, fmt.Errorf("%w: %s", ErrInputNotFile, cfg.InputPath)
	}
	di, err := os.Stat(cfg.OutputDir)
	if err != nil || !di.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrOutputDirMissing, cfg.OutputDir)
	}

	// --- Probe ---
	pr, err := r.Probe.Probe(ctx, cfg.InputPath)
	if err != nil {
		return stats, fmt.Errorf("probe failed: %w", err)
	}
	if len(pr.AudioStreams) == 0 {
		return stats, planner.ErrNoAudioStreams
	}
	stats.AudioStreams = len(pr.AudioStreams)

	log.Info("Input: %s (%s, %s)", cfg.InputPath,
		display.FormatSeconds(int64(pr.Format.Duration)),
		display.FormatBytes(pr.Format.Size))
	log.Info("Audio streams: %d", len(pr.AudioStreams))
	for _, a := range pr.AudioStreams {
		log.Debug(cfg.Verbose, "  a:%d %s %dch %d Hz %s",
			a.AudioIndex, a.Codec, a.Channels, a.SampleRate,
			display.FormatSeconds(int64(a.Duration)))
	}
	if !pr.HasVideo() {
		log.Warn("No video stream; skipping vision output")
	}

	// --- Plan and estimate ---
	plan, err := planner.BuildPlan(cfg, pr)
	if err != nil {
		return stats, err
	}
	stats.Planned = plan.TargetCount()

	est := planner.BuildEstimate(pr)
	fmt.Println()
	display.PrintEstimateTable(est)

	if cfg.DryRun {
		r.logDryRun(plan)
		return stats, nil
	}

	// --- Confirmation gate ---
	if !cfg.AssumeYes {
		prompt := fmt.Sprintf("Extract %d output files (~%d MB) into %s? [y/N] ",
			plan.TargetCount(), est.TotalMB, cfg.OutputDir)
		if !r.Confirm(prompt) {
			log.Info("Aborted by user; nothing written")
			stats.Declined = true
			return stats, nil
		}
	}

	// --- Sequential extraction: one invocation per stream, then vision ---
	start := time.Now()
	for _, job := range plan.Streams {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		r.runStream(ctx, job, &stats)
	}

	if plan.Vision != nil && ctx.Err() == nil {
		r.runVision(ctx, plan.Vision, &stats)
	}

	r.logSummary(&stats, time.Since(start))
	return stats, nil
}

// runStream executes the multi-output invocation for one audio stream,
// with the fallback retry loop. On terminal failure the invocation's
// outputs are removed so no half-written variants linger.
func (r *Runner) runStream(ctx context.Context, job planner.StreamJob, stats *RunStats) {
	log := r.Log
	log.Info("Stream %d: extracting %d variants…", job.AudioIndex, len(job.Targets))

	rs := ffmpeg.NewRetryState()
	if !r.attemptWithRetry(ctx, rs, func() []string {
		return ffmpeg.BuildStreamArgs(r.Cfg, job, rs)
	}) {
		log.Error("Stream %d extraction failed", job.AudioIndex)
		for _, t := range job.Targets {
			os.Remove(t.Path)
		}
		stats.Failed++
		return
	}

	for _, t := range job.Targets {
		if info, err := os.Stat(t.Path); err == nil {
			stats.Written++
			stats.OutputBytes += info.Size()
		}
	}
	log.Success("Stream %d done", job.AudioIndex)
}

// runVision executes the single video-only invocation.
func (r *Runner) runVision(ctx context.Context, job *planner.VisionJob, stats *RunStats) {
	log := r.Log
	log.Info("Vision: %dfps %dx%d…", job.FPS, job.Size, job.Size)

	rs := ffmpeg.NewRetryState()
	if !r.attemptWithRetry(ctx, rs, func() []string {
		return ffmpeg.BuildVisionArgs(r.Cfg, job, rs)
	}) {
		log.Error("Vision extraction failed")
		os.Remove(job.Path)
		stats.Failed++
		return
	}

	if info, err := os.Stat(job.Path); err == nil {
		stats.Written++
		stats.OutputBytes += info.Size()
	}
	log.Success("Vision done")
}

// attemptWithRetry runs one invocation with the stderr-classifying retry
// loop: execute, classify on failure, apply the first matching fix, rerun.
// Strict mode disables the fallbacks entirely.
func (r *Runner) attemptWithRetry(ctx context.Context, rs *ffmpeg.RetryState, build func() []string) bool {
	log := r.Log
	retryLabels := map[ffmpeg.RetryAction]string{
		ffmpeg.RetryDropDenoise:   "drop denoise filter",
		ffmpeg.RetryFixTimestamps: "fix timestamps",
	}

	for {
		args := build()
		log.Debug(r.Cfg.Verbose, "  %s", strings.Join(args, " "))

		result := r.Transcode.Run(ctx, r.Cfg.Verbose, args)
		if result.Err == nil {
			return true
		}

		if ctx.Err() != nil {
			log.Warn("Interrupted, aborting retries")
			return false
		}

		if r.Cfg.StrictMode {
			log.Error("ffmpeg failed (strict mode, no retry)")
			r.logStderr(result.Stderr)
			return false
		}

		action := rs.Advance(result.Stderr)
		if action == ffmpeg.RetryNone {
			log.Error("ffmpeg failed (no applicable retry)")
			r.logStderr(result.Stderr)
			return false
		}
		log.Warn("Retry %d: %s", rs.Attempt, retryLabels[action])
	}
}

func (r *Runner) logStderr(stderr string) {
	if stderr == "" {
		return
	}
	r.Log.Error("Last ffmpeg output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		r.Log.Error("  %s", l)
	}
}

func (r *Runner) logDryRun(plan *planner.Plan) {
	log := r.Log
	log.Info("[DRY] Would write %d output files:", plan.TargetCount())
	for _, job := range plan.Streams {
		for _, t := range job.Targets {
			log.Info("  %s", t.Path)
		}
	}
	if plan.Vision != nil {
		log.Info("  %s", plan.Vision.Path)
	}
}

func (r *Runner) logSummary(stats *RunStats, elapsed time.Duration) {
	log := r.Log
	log.Info("==============================")
	if stats.Failed > 0 {
		log.Warn("Done with errors: %d/%d files written, %d invocation(s) failed",
			stats.Written, stats.Planned, stats.Failed)
	} else {
		log.Success("Done: %d/%d files written", stats.Written, stats.Planned)
	}
	log.Info("  Output size: %s", display.FormatBytes(stats.OutputBytes))
	log.Info("  Elapsed: %ds", int(elapsed.Seconds()))
}
