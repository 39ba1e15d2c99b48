// Package config holds runtime configuration: defaults, an environment
// layer, CLI flag parsing, and validation. Variant encoding parameters are
// fixed here rather than exposed as flags because the downstream consumers
// (ASR, feature extraction, gaze model) expect exact sample rates and
// formats.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsage is returned when the input video argument is missing.
var ErrUsage = errors.New("missing input video argument")

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then mutated by [LoadEnv] and [ParseFlags] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Paths.
	InputPath string // Positional arg: the input video file.
	OutputDir string `env:"VOXPREP_OUTPUT_DIR"` // Must pre-exist; default "processing".

	// Audio variant parameters (fixed; see package doc).
	WhisperSampleRate  int    // Fixed: 16000 Hz (whisper, emotion).
	AnalysisSampleRate int    // Fixed: 22050 Hz (volume, analysis, events).
	LoudnormSpec       string // Fixed: EBU R128 target for loudnorm.
	EmotionVolume      string // Fixed: attenuation factor for the emotion variant.

	// Vision variant parameters (fixed).
	VisionFPS    int    // Fixed: 15.
	VisionSize   int    // Fixed: 224 (square).
	VisionCRF    int    // Fixed: 23.
	VisionPreset string // Fixed: "veryfast".

	// Behavior flags.
	AssumeYes  bool // Skip the confirmation prompt.
	DryRun     bool // Print the plan and estimate, run nothing.
	StrictMode bool // Disable automatic ffmpeg retry fallbacks.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string `env:"VOXPREP_LOG_FILE"` // Optional log file path.
	CheckOnly bool   // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// extraction script (v2) behavior. Used as the base before [LoadEnv] and
// [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		OutputDir:          "processing",
		WhisperSampleRate:  16000,
		AnalysisSampleRate: 22050,
		LoudnormSpec:       "I=-16:TP=-1.5:LRA=11",
		EmotionVolume:      "0.8",
		VisionFPS:          15,
		VisionSize:         224,
		VisionCRF:          23,
		VisionPreset:       "veryfast",
		AssumeYes:          false,
		DryRun:             false,
		StrictMode:         false,
		Verbose:            false,
		ColorMode:          ColorAuto,
		CheckOnly:          false,
	}
}

// Validate checks enum fields and, when not in CheckOnly mode, requires an
// input path. A missing input path is a usage error ([ErrUsage]).
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if strings.TrimSpace(c.InputPath) == "" {
		return ErrUsage
	}
	return nil
}
