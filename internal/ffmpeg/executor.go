package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute runs a pre-built ffmpeg argument slice (args[0] is the binary).
// When verbose is enabled, stderr is tee'd to os.Stderr in real time;
// otherwise it is captured silently for retry classification. No timeout
// is imposed; cancellation comes from ctx.
func Execute(ctx context.Context, verbose bool, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
