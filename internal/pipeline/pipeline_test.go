package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxprep/voxprep/internal/config"
	"github.com/voxprep/voxprep/internal/ffmpeg"
	"github.com/voxprep/voxprep/internal/logging"
	"github.com/voxprep/voxprep/internal/planner"
	"github.com/voxprep/voxprep/internal/probe"
)

// --- Fakes ---

type fakeProber struct {
	result *probe.Result
	err    error
	calls  int
}

func (f *fakeProber) Probe(_ context.Context, _ string) (*probe.Result, error) {
	f.calls++
	return f.result, f.err
}

// fakeTranscoder records every invocation and can fail selected calls.
// failures maps 1-based call numbers to the stderr to report.
type fakeTranscoder struct {
	calls    [][]string
	failures map[int]string
}

func (f *fakeTranscoder) Run(_ context.Context, _ bool, args []string) ffmpeg.ExecResult {
	f.calls = append(f.calls, args)
	if stderr, ok := f.failures[len(f.calls)]; ok {
		return ffmpeg.ExecResult{Stderr: stderr, Err: os.ErrInvalid}
	}
	return ffmpeg.ExecResult{}
}

func yes(string) bool { return true }
func no(string) bool  { return false }

func twoStreamResult() *probe.Result {
	return &probe.Result{
		Format: probe.FormatInfo{Duration: 20, Size: 1 << 20},
		PrimaryVideo: &probe.VideoStream{Codec: "h264", Width: 1920, Height: 1080},
		AudioStreams: []probe.AudioStream{
			{Index: 1, AudioIndex: 0, Codec: "aac", Channels: 1, Duration: 10},
			{Index: 2, AudioIndex: 1, Codec: "aac", Channels: 1, Duration: 20},
		},
	}
}

// newTestRunner wires a runner with a real temp input file and output dir.
func newTestRunner(t *testing.T, pr *probe.Result) (*Runner, *fakeProber, *fakeTranscoder) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "standup.mkv")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))
	outDir := filepath.Join(dir, "processing")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	cfg := config.DefaultConfig()
	cfg.InputPath = input
	cfg.OutputDir = outDir
	cfg.ColorMode = config.ColorNever

	log, err := logging.NewLogger(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	prober := &fakeProber{result: pr}
	transcoder := &fakeTranscoder{}
	return &Runner{
		Cfg:       &cfg,
		Log:       log,
		Probe:     prober,
		Transcode: transcoder,
		Confirm:   yes,
	}, prober, transcoder
}

// --- Precondition tests ---

func TestRun_MissingInput(t *testing.T) {
	r, prober, transcoder := newTestRunner(t, twoStreamResult())
	r.Cfg.InputPath = filepath.Join(t.TempDir(), "nope.mkv")

	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrInputNotFile)
	assert.Zero(t, prober.calls, "no probe before preconditions pass")
	assert.Empty(t, transcoder.calls)
}

func TestRun_InputIsDirectory(t *testing.T) {
	r, _, _ := newTestRunner(t, twoStreamResult())
	r.Cfg.InputPath = t.TempDir()

	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrInputNotFile)
}

func TestRun_MissingOutputDir(t *testing.T) {
	r, prober, transcoder := newTestRunner(t, twoStreamResult())
	r.Cfg.OutputDir = filepath.Join(t.TempDir(), "does-not-exist")

	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrOutputDirMissing)
	assert.Zero(t, prober.calls)
	assert.Empty(t, transcoder.calls)
}

func TestRun_NoAudioStreams(t *testing.T) {
	pr := &probe.Result{PrimaryVideo: &probe.VideoStream{Codec: "h264"}}
	r, _, transcoder := newTestRunner(t, pr)

	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, planner.ErrNoAudioStreams)
	assert.Empty(t, transcoder.calls)
}

// --- Confirmation gate ---

func TestRun_DeclinedIsSuccessWithNoOutput(t *testing.T) {
	r, _, transcoder := newTestRunner(t, twoStreamResult())
	r.Confirm = no

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.Declined)
	assert.Empty(t, transcoder.calls, "declining must not invoke the transcoder")
	assert.Zero(t, stats.Written)
}

func TestRun_AssumeYesSkipsPrompt(t *testing.T) {
	r, _, transcoder := newTestRunner(t, twoStreamResult())
	r.Cfg.AssumeYes = true
	r.Confirm = func(string) bool {
		t.Fatal("confirmer must not be called with --yes")
		return false
	}

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, transcoder.calls, 3)
}

func TestRun_DryRunInvokesNothing(t *testing.T) {
	r, _, transcoder := newTestRunner(t, twoStreamResult())
	r.Cfg.DryRun = true
	r.Confirm = func(string) bool {
		t.Fatal("confirmer must not be called in dry-run")
		return false
	}

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, transcoder.calls)
	assert.Equal(t, 11, stats.Planned)
}

// --- Extraction ---

func TestRun_OneInvocationPerStreamPlusVision(t *testing.T) {
	r, _, transcoder := newTestRunner(t, twoStreamResult())

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	// 2 audio streams + 1 vision.
	require.Len(t, transcoder.calls, 3)
	assert.Equal(t, 11, stats.Planned)
	assert.Zero(t, stats.Failed)

	assert.Contains(t, strings.Join(transcoder.calls[0], " "), "-map 0:a:0")
	assert.Contains(t, strings.Join(transcoder.calls[1], " "), "-map 0:a:1")
	assert.Contains(t, strings.Join(transcoder.calls[2], " "), "-map 0:v:0")
}

func TestRun_NoVideoSkipsVisionInvocation(t *testing.T) {
	pr := twoStreamResult()
	pr.PrimaryVideo = nil
	r, _, transcoder := newTestRunner(t, pr)

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, transcoder.calls, 2)
	assert.Equal(t, 10, stats.Planned)
}

func TestRun_StreamFailureContinuesAndCounts(t *testing.T) {
	r, _, transcoder := newTestRunner(t, twoStreamResult())
	r.Cfg.StrictMode = true // no retries: first failure is terminal
	transcoder.failures = map[int]string{1: "Invalid data found when processing input"}

	stats, err := r.Run(context.Background())
	require.NoError(t, err, "mid-run ffmpeg failure is not a pipeline error")
	assert.Equal(t, 1, stats.Failed)
	// Remaining stream and vision still ran.
	assert.Len(t, transcoder.calls, 3)
}

func TestRun_DenoiseFallbackRetry(t *testing.T) {
	r, _, transcoder := newTestRunner(t, twoStreamResult())
	transcoder.failures = map[int]string{1: "No such filter: 'afftdn'"}

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Failed)
	// Stream 0 ran twice (fail + fallback), stream 1 and vision once each.
	require.Len(t, transcoder.calls, 4)
	assert.Contains(t, strings.Join(transcoder.calls[0], " "), "afftdn")
	assert.NotContains(t, strings.Join(transcoder.calls[1], " "), "afftdn")
	// The fallback is per-invocation state: the next stream denoises again.
	assert.Contains(t, strings.Join(transcoder.calls[2], " "), "afftdn")
}

func TestRun_CountsWrittenBytes(t *testing.T) {
	r, _, _ := newTestRunner(t, twoStreamResult())

	// Transcoder fake that actually writes every mapped output path.
	r.Transcode = writingTranscoder{}

	stats, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, stats.Written)
	assert.Equal(t, int64(11*4), stats.OutputBytes)
}

// writingTranscoder creates a 4-byte file at each output path. Output
// paths are the args carrying a variant extension.
type writingTranscoder struct{}

func (writingTranscoder) Run(_ context.Context, _ bool, args []string) ffmpeg.ExecResult {
	for _, a := range args {
		switch filepath.Ext(a) {
		case ".wav", ".flac", ".mp4":
			if strings.Contains(a, string(filepath.Separator)) {
				_ = os.WriteFile(a, []byte("data"), 0o644)
			}
		}
	}
	return ffmpeg.ExecResult{}
}

func TestAffirmative(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{" y \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, affirmative(tt.in), "input %q", tt.in)
	}
}
