package processor

import "context"

// Processor runs the full pipeline for one video file: audio segmentation,
// transcription, document rendering and the final merge.
type Processor interface {
	Process(ctx context.Context, videoPath string) error
}
