package executor

import "context"

// Executor defines the interface for invoking external commands.
// The pipeline uses it to drive ffmpeg and ffprobe.
type Executor interface {
	// Execute runs a command and returns its trimmed stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
