package planner

// Variant is one named output transformation policy: a filter chain plus a
// target encoding, applied to a source audio stream. The catalogue is fixed
// by the downstream consumers; see [AudioVariants].
type Variant struct {
	Name       string // whisper, volume, analysis, events, emotion.
	SampleRate int    // Output sample rate in Hz.
	Channels   int    // Always 1 (mono) for the current catalogue.
	Denoise    bool   // Prepend the noise-reduction filter (afftdn).
	BaseFilter string // Additional -af chain after denoise (may be empty).
	Codec      string // ffmpeg audio codec name (pcm_s16le, flac).
	Ext        string // Output extension without dot (wav, flac).
}

// FilterChain returns the comma-joined -af chain for this variant.
// denoise=false drops the afftdn stage (the retry fallback for ffmpeg
// builds compiled without it); the base filter is always kept.
func (v Variant) FilterChain(denoise bool) string {
	if v.Denoise && denoise {
		if v.BaseFilter != "" {
			return "afftdn," + v.BaseFilter
		}
		return "afftdn"
	}
	return v.BaseFilter
}

// OutputTarget is one planned output file: a variant applied to a stream.
type OutputTarget struct {
	Variant Variant
	Path    string
}

// StreamJob is one planned ffmpeg invocation: every audio variant for a
// single source stream, produced via multiple output mappings.
type StreamJob struct {
	AudioIndex  int     // 0-based position among audio streams (for -map 0:a:N).
	DurationSec int64   // Truncated stream duration, 0 when unreported.
	Targets     []OutputTarget
}

// VisionJob is the single video-only invocation for the whole file.
type VisionJob struct {
	Path   string
	FPS    int
	Size   int // Square output: Size x Size.
	CRF    int
	Preset string
}

// Plan is the complete extraction plan for one input file: one StreamJob
// per audio stream plus one VisionJob (when the input has video).
type Plan struct {
	InputPath string
	Basename  string // Input filename without directory or extension.
	Streams   []StreamJob
	Vision    *VisionJob // nil when the input has no video stream.
}

// TargetCount returns the total number of planned output files
// (streams x audio variants, plus one for vision when present).
func (p *Plan) TargetCount() int {
	n := 0
	for _, s := range p.Streams {
		n += len(s.Targets)
	}
	if p.Vision != nil {
		n++
	}
	return n
}
