package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/voxprep/voxprep/internal/ffmpeg"
	"github.com/voxprep/voxprep/internal/probe"
)

// Prober abstracts the media probing tool so the runner is testable
// without spawning real external processes.
type Prober interface {
	Probe(ctx context.Context, path string) (*probe.Result, error)
}

// Transcoder abstracts a single external transcode invocation: a pre-built
// argument slice in, exit status and captured stderr out.
type Transcoder interface {
	Run(ctx context.Context, verbose bool, args []string) ffmpeg.ExecResult
}

// Confirmer gates the extraction phase. It receives the prompt text and
// reports whether the user answered affirmatively.
type Confirmer func(prompt string) bool

// ffprobeProber is the production Prober backed by the probe package.
type ffprobeProber struct{}

func (ffprobeProber) Probe(ctx context.Context, path string) (*probe.Result, error) {
	return probe.Probe(ctx, path)
}

// ffmpegTranscoder is the production Transcoder backed by the ffmpeg package.
type ffmpegTranscoder struct{}

func (ffmpegTranscoder) Run(ctx context.Context, verbose bool, args []string) ffmpeg.ExecResult {
	return ffmpeg.Execute(ctx, verbose, args)
}

// StdinConfirmer prompts on stdout and reads one line from stdin.
// Only "y" and "yes" (case-insensitive) proceed; anything else, including
// EOF, declines.
func StdinConfirmer(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return affirmative(line)
}

// affirmative reports whether a confirmation answer means yes. Anything
// but "y"/"yes" (case-insensitive) declines.
func affirmative(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
