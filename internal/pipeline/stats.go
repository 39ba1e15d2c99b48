package pipeline

// RunStats tracks counters and byte totals across one extraction run.
type RunStats struct {
	AudioStreams int   // Audio streams found in the input.
	Planned      int   // Output targets in the plan (streams x variants + vision).
	Written      int   // Output files confirmed on disk.
	Failed       int   // ffmpeg invocations that failed after retries.
	Declined     bool  // User answered no at the confirmation gate.
	OutputBytes  int64 // Actual bytes written (never reconciled with the estimate).
}
