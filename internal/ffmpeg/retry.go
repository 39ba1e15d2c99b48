package ffmpeg

// RetryAction identifies which fix was applied (or none).
type RetryAction int

const (
	RetryNone          RetryAction = iota
	RetryDropDenoise               // Rebuild filter chains without afftdn.
	RetryFixTimestamps             // Enable +genpts+discardcorrupt.
)

const maxAttempts = 3

// RetryState tracks which fallback fixes have been applied across ffmpeg
// retry attempts for a single invocation. A fresh state is created per
// stream job so one stream's fallback does not leak into the next.
type RetryState struct {
	Attempt     int
	MaxAttempts int

	Denoise      bool // Keep afftdn in the filter chains.
	TimestampFix bool
}

// NewRetryState returns the initial state: denoise on, no timestamp fix.
func NewRetryState() *RetryState {
	return &RetryState{
		MaxAttempts: maxAttempts,
		Denoise:     true,
	}
}

// Advance inspects stderr from a failed ffmpeg run, finds the first
// matching error pattern whose fix has not yet been applied, applies that
// fix, and returns the action taken. Returns RetryNone when no fixable
// pattern matches or the attempt limit is reached. One fix per call.
func (s *RetryState) Advance(stderr string) RetryAction {
	s.Attempt++
	if s.Attempt >= s.MaxAttempts {
		return RetryNone
	}

	if s.Denoise && MatchMissingDenoiseFilter(stderr) {
		s.Denoise = false
		return RetryDropDenoise
	}
	if !s.TimestampFix && MatchTimestampIssue(stderr) {
		s.TimestampFix = true
		return RetryFixTimestamps
	}

	return RetryNone
}
