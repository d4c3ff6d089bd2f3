package processor

import (
	"context"
	"os"
)

// cleanupWorkspace removes the job's temp workspace recursively. Best-effort:
// a failure here must not turn a finished job into a failed one.
func (p *implProcessor) cleanupWorkspace(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to remove temp workspace %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Removed temp workspace: %s", dir)
	}
}

// removeSegments deletes segment audio files once their content has been
// folded into the merged document.
func (p *implProcessor) removeSegments(ctx context.Context, segments []segment) {
	for _, seg := range segments {
		if err := os.Remove(seg.path); err != nil {
			p.logger.Warn(ctx, "Failed to remove audio segment %s: %v", seg.path, err)
		}
	}
}

// replaceFile atomically renames src over dst.
func replaceFile(src, dst string) error {
	return os.Rename(src, dst)
}
