package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	NbStreams  int
	FormatName string
	Duration   float64
	Size       int64
	BitRate    int64
}

// AudioStream holds the parsed properties of a single audio stream.
// Duration falls back to the container duration when the stream does not
// report one, and is 0 when neither is available.
type AudioStream struct {
	Index         int     // Absolute stream index in the container.
	AudioIndex    int     // Position among audio streams (0-based, for -map 0:a:N).
	Codec         string
	Channels      int
	ChannelLayout string
	SampleRate    int
	Duration      float64 // Seconds; 0 when unreported.
	Language      string
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index         int
	Codec         string
	Width         int
	Height        int
	AvgFrameRate  string
	IsAttachedPic bool
}

// Result is the fully parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-attached-pic video stream (nil if none).
type Result struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
	AudioStreams []AudioStream
}

// HasVideo reports whether the file carries a real (non-cover-art) video
// stream usable for the vision output.
func (r *Result) HasVideo() bool {
	return r.PrimaryVideo != nil
}
