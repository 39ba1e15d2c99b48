// Package planner turns probe data into an extraction plan (one multi-output
// ffmpeg job per audio stream, plus one vision job) and computes the storage
// estimate shown at the confirmation gate.
package planner

import (
	"errors"

	"github.com/voxprep/voxprep/internal/config"
	"github.com/voxprep/voxprep/internal/probe"
)

// ErrNoAudioStreams is returned when the probed input carries no audio.
var ErrNoAudioStreams = errors.New("no audio streams found in input")

// BuildPlan produces the complete extraction plan for one probed file.
//
// Flow:
//  1. One StreamJob per audio stream, each carrying all five audio variants
//     with deterministic output paths.
//  2. One VisionJob for the whole file when a usable video stream exists
//     (cover-art streams don't count).
func BuildPlan(cfg *config.Config, pr *probe.Result) (*Plan, error) {
	if len(pr.AudioStreams) == 0 {
		return nil, ErrNoAudioStreams
	}

	basename := Basename(cfg.InputPath)
	variants := AudioVariants(cfg)

	plan := &Plan{
		InputPath: cfg.InputPath,
		Basename:  basename,
	}

	for _, a := range pr.AudioStreams {
		job := StreamJob{
			AudioIndex:  a.AudioIndex,
			DurationSec: int64(a.Duration),
		}
		for _, v := range variants {
			job.Targets = append(job.Targets, OutputTarget{
				Variant: v,
				Path:    VariantPath(cfg.OutputDir, basename, a.AudioIndex, v),
			})
		}
		plan.Streams = append(plan.Streams, job)
	}

	if pr.HasVideo() {
		plan.Vision = &VisionJob{
			Path:   VisionPath(cfg.OutputDir, basename),
			FPS:    cfg.VisionFPS,
			Size:   cfg.VisionSize,
			CRF:    cfg.VisionCRF,
			Preset: cfg.VisionPreset,
		}
	}

	return plan, nil
}
