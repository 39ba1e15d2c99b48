// Package ffmpeg builds and executes ffmpeg commands: one multi-output
// invocation per audio stream, one video-only invocation per file, with a
// small stderr-classifying retry engine for fragile ffmpeg builds.
package ffmpeg

import (
	"fmt"
	"strconv"

	"github.com/voxprep/voxprep/internal/config"
	"github.com/voxprep/voxprep/internal/planner"
)

// BuildStreamArgs constructs the complete ffmpeg argument slice for one
// audio stream: a shared preamble, the input, then one mapped output per
// variant. ffmpeg applies output options (map, filter, rate, codec) to the
// output file that follows them, which is what lets a single invocation
// write all five variants in one demux pass.
//
// The retry state supplies the current denoise/timestamp settings, which
// may differ from the plan's initial values after fallback adjustments.
func BuildStreamArgs(cfg *config.Config, job planner.StreamJob, rs *RetryState) []string {
	args := preamble(cfg, rs)
	args = append(args, "-i", cfg.InputPath)

	for _, t := range job.Targets {
		v := t.Variant
		args = append(args, "-map", fmt.Sprintf("0:a:%d", job.AudioIndex))
		if chain := v.FilterChain(rs.Denoise); chain != "" {
			args = append(args, "-af", chain)
		}
		args = append(args,
			"-ar", strconv.Itoa(v.SampleRate),
			"-ac", strconv.Itoa(v.Channels),
			"-c:a", v.Codec,
			t.Path,
		)
	}
	return args
}

// BuildVisionArgs constructs the argument slice for the single video-only
// output: first video stream, downsampled to a fixed frame rate and square
// resolution, audio dropped.
func BuildVisionArgs(cfg *config.Config, job *planner.VisionJob, rs *RetryState) []string {
	args := preamble(cfg, rs)
	args = append(args, "-i", cfg.InputPath,
		"-map", "0:v:0",
		"-vf", fmt.Sprintf("fps=%d,scale=%d:%d", job.FPS, job.Size, job.Size),
		"-c:v", "libx264",
		"-crf", strconv.Itoa(job.CRF),
		"-preset", job.Preset,
		"-pix_fmt", "yuv420p",
		"-an",
		job.Path,
	)
	return args
}

// preamble returns the flags shared by every invocation. -y makes repeated
// runs overwrite deterministically-named outputs without prompting.
func preamble(cfg *config.Config, rs *RetryState) []string {
	args := []string{"ffmpeg", "-hide_banner", "-nostdin", "-y"}
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}
	if rs.TimestampFix {
		args = append(args, "-fflags", "+genpts+discardcorrupt")
	}
	return args
}
