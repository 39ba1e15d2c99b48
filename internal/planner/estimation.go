package planner

import "github.com/voxprep/voxprep/internal/probe"

// Estimation constants. Integer arithmetic throughout, truncating at every
// division, with the bytes→MB conversion done last. These mirror the legacy
// extraction script's v2 math.
const (
	whisperRate    = 16000 // Hz, 16-bit mono PCM.
	pcmRate        = 22050 // Hz, base rate for the lossless variants.
	bytesPerSample = 2
	flacRatioPct   = 40 // Fixed compression-ratio heuristic, not measured.
	bytesPerMB     = 1 << 20
)

// StreamEstimate holds the advisory size estimate for one audio stream.
type StreamEstimate struct {
	AudioIndex  int
	DurationSec int64
	WhisperMB   int64 // Uncompressed 16 kHz PCM output.
	FlacMB      int64 // Per lossless variant at 22.05 kHz.
	TotalMB     int64 // whisper + 3x flac; see [EstimateStream].
}

// Estimate aggregates per-stream estimates into a grand total.
type Estimate struct {
	Streams []StreamEstimate
	TotalMB int64
}

// EstimateStream computes the advisory storage estimate for one stream.
// The stream total counts the whisper output plus three FLAC variants
// (volume, analysis, events); the emotion variant shares the FLAC estimate
// but is excluded from the total, matching the legacy script's v2 totals.
// A duration of 0 (unreported) yields a zero estimate, not an error.
func EstimateStream(audioIndex int, durationSec int64) StreamEstimate {
	if durationSec < 0 {
		durationSec = 0
	}
	whisperBytes := durationSec * whisperRate * 1 * bytesPerSample
	pcmBytes := durationSec * pcmRate * 1 * bytesPerSample
	flacBytes := pcmBytes * flacRatioPct / 100

	whisperMB := whisperBytes / bytesPerMB
	flacMB := flacBytes / bytesPerMB

	return StreamEstimate{
		AudioIndex:  audioIndex,
		DurationSec: durationSec,
		WhisperMB:   whisperMB,
		FlacMB:      flacMB,
		TotalMB:     whisperMB + 3*flacMB,
	}
}

// BuildEstimate computes per-stream estimates and the grand total for all
// audio streams in the probe result. Durations are truncated to whole
// seconds before any multiplication.
func BuildEstimate(pr *probe.Result) Estimate {
	var est Estimate
	for _, a := range pr.AudioStreams {
		se := EstimateStream(a.AudioIndex, int64(a.Duration))
		est.Streams = append(est.Streams, se)
		est.TotalMB += se.TotalMB
	}
	return est
}
