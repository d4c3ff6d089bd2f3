package scheduler

import "context"

// Scheduler discovers video files in the input directory and fans them out
// to the per-video pipeline with bounded concurrency.
type Scheduler interface {
	// Run processes every video currently in the input directory and
	// returns once all jobs have finished.
	Run(ctx context.Context) error
	// Watch behaves like Run, then keeps submitting newly created videos
	// until the context is cancelled.
	Watch(ctx context.Context) error
}

// JobHandler processes a single video file.
type JobHandler func(ctx context.Context, videoPath string) error
