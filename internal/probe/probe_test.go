package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Realistic ffprobe JSON for a meeting recording with:
//   - 1 H.264 video stream
//   - 2 AAC mono audio streams (one per participant), the second without a
//     stream-level duration (falls back to the container duration)
//   - 1 attached-pic cover art stream (must not become PrimaryVideo)
const sampleTwoSpeakers = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "avg_frame_rate": "30/1",
      "disposition": { "default": 1, "attached_pic": 0 }
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 1,
      "channel_layout": "mono",
      "sample_rate": "48000",
      "duration": "10.500000",
      "disposition": { "default": 1 },
      "tags": { "language": "eng" }
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 1,
      "channel_layout": "mono",
      "sample_rate": "48000",
      "disposition": { "default": 0 }
    },
    {
      "index": 3,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 600,
      "disposition": { "default": 0, "attached_pic": 1 }
    }
  ],
  "format": {
    "filename": "standup.mkv",
    "nb_streams": 4,
    "format_name": "matroska,webm",
    "duration": "20.750000",
    "size": "52428800",
    "bit_rate": "4194304"
  }
}`

func TestParseJSON_TwoSpeakers(t *testing.T) {
	r, err := ParseJSON([]byte(sampleTwoSpeakers))
	require.NoError(t, err)

	require.Len(t, r.AudioStreams, 2)
	assert.Equal(t, 20.75, r.Format.Duration)
	assert.Equal(t, int64(52428800), r.Format.Size)

	a0 := r.AudioStreams[0]
	assert.Equal(t, 1, a0.Index)
	assert.Equal(t, 0, a0.AudioIndex)
	assert.Equal(t, "aac", a0.Codec)
	assert.Equal(t, 48000, a0.SampleRate)
	assert.Equal(t, 10.5, a0.Duration)
	assert.Equal(t, "eng", a0.Language)

	// Second stream has no duration of its own: container fallback.
	a1 := r.AudioStreams[1]
	assert.Equal(t, 1, a1.AudioIndex)
	assert.Equal(t, 20.75, a1.Duration)
}

func TestParseJSON_PrimaryVideoSkipsCoverArt(t *testing.T) {
	r, err := ParseJSON([]byte(sampleTwoSpeakers))
	require.NoError(t, err)

	require.True(t, r.HasVideo())
	assert.Equal(t, "h264", r.PrimaryVideo.Codec)
	assert.Equal(t, 0, r.PrimaryVideo.Index)
}

func TestParseJSON_MatroskaDurationTag(t *testing.T) {
	const mkv = `{
	  "streams": [
	    {
	      "index": 0,
	      "codec_type": "audio",
	      "codec_name": "flac",
	      "channels": 2,
	      "tags": { "DURATION": "00:02:05.250000000" }
	    }
	  ],
	  "format": { "nb_streams": 1 }
	}`
	r, err := ParseJSON([]byte(mkv))
	require.NoError(t, err)
	require.Len(t, r.AudioStreams, 1)
	assert.InDelta(t, 125.25, r.AudioStreams[0].Duration, 1e-9)
}

func TestParseJSON_NoDurationAnywhereIsZero(t *testing.T) {
	const bare = `{
	  "streams": [
	    { "index": 0, "codec_type": "audio", "codec_name": "pcm_s16le", "channels": 1 }
	  ],
	  "format": { "nb_streams": 1 }
	}`
	r, err := ParseJSON([]byte(bare))
	require.NoError(t, err)
	require.Len(t, r.AudioStreams, 1)
	assert.Zero(t, r.AudioStreams[0].Duration)
}

func TestParseJSON_NoAudio(t *testing.T) {
	const videoOnly = `{
	  "streams": [
	    { "index": 0, "codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720 }
	  ],
	  "format": { "nb_streams": 1, "duration": "60.0" }
	}`
	r, err := ParseJSON([]byte(videoOnly))
	require.NoError(t, err)
	assert.Empty(t, r.AudioStreams)
	assert.True(t, r.HasVideo())
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestParseTagDuration(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"full tag", "01:02:03.500000000", 3723.5},
		{"zero", "00:00:00.000000000", 0},
		{"garbage", "abc", 0},
		{"wrong field count", "02:03", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, parseTagDuration(tt.in), 1e-9)
		})
	}
}
