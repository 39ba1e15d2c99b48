package ffmpeg

import "regexp"

// Pre-compiled regexes for classifying ffmpeg stderr output into retryable
// error categories. Checked in order by [RetryState.Advance]; the first
// matching pattern whose fix has not yet been applied wins.
var (
	// Stripped ffmpeg builds (notably some distro packages) ship without
	// the FFT denoiser the whisper/analysis variants use.
	reMissingFilter = regexp.MustCompile(
		`No such filter: '?afftdn'?|` +
			`Error initializing filter 'afftdn'|` +
			`Error reinitializing filters`)

	reTimestampIssue = regexp.MustCompile(
		`(?i)Non-monotonous DTS|non monotonically increasing dts|` +
			`DTS .*out of order|PTS .*out of order|` +
			`pts has no value|missing PTS|Timestamps are unset`)
)

// MatchMissingDenoiseFilter reports whether stderr indicates the denoise
// filter is unavailable or failed to initialize.
func MatchMissingDenoiseFilter(stderr string) bool {
	return reMissingFilter.MatchString(stderr)
}

// MatchTimestampIssue reports whether stderr contains a timestamp
// discontinuity.
func MatchTimestampIssue(stderr string) bool {
	return reTimestampIssue.MatchString(stderr)
}
