package planner

import "github.com/voxprep/voxprep/internal/config"

// AudioVariants returns the fixed variant catalogue, in emission order.
// Every audio stream receives all five; the set is total by contract with
// the downstream pipeline:
//
//   - whisper:  16 kHz mono 16-bit PCM, denoised — ASR input.
//   - volume:   22.05 kHz mono FLAC, unfiltered — RMS/energy analysis.
//   - analysis: 22.05 kHz mono FLAC, denoised + loudness-normalized —
//     pitch/formant/spectral feature extraction.
//   - events:   22.05 kHz mono FLAC, loudness-normalized — event detection.
//   - emotion:  16 kHz mono FLAC, attenuated — HuBERT preprocessing.
func AudioVariants(cfg *config.Config) []Variant {
	loudnorm := "loudnorm=" + cfg.LoudnormSpec
	return []Variant{
		{
			Name:       "whisper",
			SampleRate: cfg.WhisperSampleRate,
			Channels:   1,
			Denoise:    true,
			Codec:      "pcm_s16le",
			Ext:        "wav",
		},
		{
			Name:       "volume",
			SampleRate: cfg.AnalysisSampleRate,
			Channels:   1,
			Codec:      "flac",
			Ext:        "flac",
		},
		{
			Name:       "analysis",
			SampleRate: cfg.AnalysisSampleRate,
			Channels:   1,
			Denoise:    true,
			BaseFilter: loudnorm,
			Codec:      "flac",
			Ext:        "flac",
		},
		{
			Name:       "events",
			SampleRate: cfg.AnalysisSampleRate,
			Channels:   1,
			BaseFilter: loudnorm,
			Codec:      "flac",
			Ext:        "flac",
		},
		{
			Name:       "emotion",
			SampleRate: cfg.WhisperSampleRate,
			Channels:   1,
			BaseFilter: "volume=" + cfg.EmotionVolume,
			Codec:      "flac",
			Ext:        "flac",
		},
	}
}
