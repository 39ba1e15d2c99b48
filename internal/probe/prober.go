// Package probe wraps ffprobe: one JSON call per input file, parsed into
// domain types with per-stream durations resolved.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result. It replaces the per-stream ffprobe calls made by the
// legacy extraction script (one for the stream list, one per duration).
func Probe(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	NbStreams  int    `json:"nb_streams"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
}

type ffprobeStream struct {
	Index         int               `json:"index"`
	CodecName     string            `json:"codec_name"`
	CodecType     string            `json:"codec_type"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	AvgFrameRate  string            `json:"avg_frame_rate"`
	Channels      int               `json:"channels"`
	ChannelLayout string            `json:"channel_layout"`
	SampleRate    string            `json:"sample_rate"`
	Duration      string            `json:"duration"`
	Disposition   map[string]int    `json:"disposition"`
	Tags          map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *Result {
	r := &Result{
		Format: convertFormat(&raw.Format),
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			vs := convertVideo(s)
			if !vs.IsAttachedPic && r.PrimaryVideo == nil {
				r.PrimaryVideo = &vs
			}
		case "audio":
			a := convertAudio(s, r.Format.Duration)
			a.AudioIndex = len(r.AudioStreams)
			r.AudioStreams = append(r.AudioStreams, a)
		}
	}
	return r
}

func convertFormat(f *ffprobeFormat) FormatInfo {
	return FormatInfo{
		Filename:   f.Filename,
		NbStreams:  f.NbStreams,
		FormatName: f.FormatName,
		Duration:   parseFloat(f.Duration),
		Size:       parseInt64(f.Size),
		BitRate:    parseInt64(f.BitRate),
	}
}

func convertVideo(s *ffprobeStream) VideoStream {
	return VideoStream{
		Index:         s.Index,
		Codec:         s.CodecName,
		Width:         s.Width,
		Height:        s.Height,
		AvgFrameRate:  s.AvgFrameRate,
		IsAttachedPic: s.Disposition["attached_pic"] == 1,
	}
}

// convertAudio resolves the stream duration: the stream's own value wins,
// then the container duration, then 0. MKV commonly omits per-stream
// durations, which is why the container fallback exists.
func convertAudio(s *ffprobeStream, containerDuration float64) AudioStream {
	dur := parseFloat(s.Duration)
	if dur <= 0 {
		if tag := s.Tags["DURATION"]; tag != "" {
			dur = parseTagDuration(tag)
		}
	}
	if dur <= 0 {
		dur = containerDuration
	}
	if dur < 0 {
		dur = 0
	}
	return AudioStream{
		Index:         s.Index,
		Codec:         s.CodecName,
		Channels:      s.Channels,
		ChannelLayout: s.ChannelLayout,
		SampleRate:    parseInt(s.SampleRate),
		Duration:      dur,
		Language:      s.Tags["language"],
	}
}

// parseTagDuration parses Matroska-style "HH:MM:SS.nnnnnnnnn" tags.
func parseTagDuration(tag string) float64 {
	parts := strings.Split(strings.TrimSpace(tag), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}
	return float64(h)*3600 + float64(m)*60 + s
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	n, _ := strconv.Atoi(s)
	return n
}
