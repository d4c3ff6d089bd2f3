package document

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
)

// Merge concatenates the documents at sources, in input order, into one
// .docx at outputPath, then removes the source artifacts. A source that
// cannot be loaded is logged and skipped; the merge proceeds with the rest.
func Merge(ctx context.Context, sources []string, outputPath string, log logger.Logger) error {
	merged := &Document{}

	for _, src := range sources {
		d, err := Load(src)
		if err != nil {
			log.Error(ctx, "Failed to load %s for merge: %v", src, err)
			continue
		}
		merged.Append(d)
	}

	if err := WriteDocx(merged, outputPath); err != nil {
		return fmt.Errorf("write merged document: %w", err)
	}

	for _, src := range sources {
		if err := os.Remove(src); err != nil {
			log.Warn(ctx, "Failed to remove intermediate document %s: %v", src, err)
		}
	}

	log.Info(ctx, "Merged %d documents into %s", len(sources), outputPath)
	return nil
}
