// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for ffmpeg, ffprobe, the audio filters,
// and the FLAC/x264 encoders this tool depends on.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound   = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound  = errors.New("ffprobe not found on PATH")
	ErrFlacEncodeFailed = errors.New("FLAC test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of
// ffmpeg, ffprobe, the required audio filters, and the FLAC and x264
// encoders. Informational only — it does not stop on failure. Returns
// false when any required piece is missing.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkBinary(log, "ffmpeg")
	ok = checkBinary(log, "ffprobe") && ok
	ok = checkFilters(log) && ok
	ok = checkFlac(log) && ok
	ok = checkX264(log) && ok
	return ok
}

// checkBinary verifies a tool is on PATH and logs its version string.
func checkBinary(log Logger, name string) bool {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
	return true
}

// checkFilters reports whether the filter chains used by the audio
// variants (afftdn, loudnorm, volume) are present in this ffmpeg build.
// A missing afftdn is a warning, not a failure: the retry fallback drops
// the denoise stage.
func checkFilters(log Logger) bool {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-filters").Output()
	if err != nil {
		log.Warn("Could not list filters: %v", err)
		return true
	}
	filters := string(out)
	ok := true
	for _, f := range []string{"afftdn", "loudnorm", "volume"} {
		if strings.Contains(filters, " "+f+" ") {
			log.Success("filter %s available", f)
			continue
		}
		if f == "afftdn" {
			log.Warn("filter afftdn missing (denoise will be skipped)")
			continue
		}
		log.Error("filter %s missing", f)
		ok = false
	}
	return ok
}

// checkFlac runs a minimal FLAC encode to verify the lossless path works.
func checkFlac(log Logger) bool {
	log.Info("Testing FLAC encoder...")
	if runSilent("ffmpeg", flacTestArgs()...) {
		log.Success("FLAC encoder works")
		return true
	}
	log.Error("FLAC test encode failed")
	return false
}

// checkX264 runs a minimal libx264 encode for the vision output.
func checkX264(log Logger) bool {
	log.Info("Testing libx264...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=224x224:d=0.1",
		"-c:v", "libx264", "-f", "null", "-",
	) {
		log.Success("libx264 works")
		return true
	}
	log.Error("libx264 test encode failed")
	return false
}

// CheckDeps is the pre-run validation: ffmpeg and ffprobe must be on PATH
// and a quick FLAC encode must succeed. Returns a sentinel error on
// failure so the caller can fail fast before probing.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", flacTestArgs()...) {
		return ErrFlacEncodeFailed
	}
	return nil
}

// flacTestArgs returns the ffmpeg arguments for a minimal FLAC test
// encode. Shared by checkFlac and CheckDeps.
func flacTestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", "flac", "-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
