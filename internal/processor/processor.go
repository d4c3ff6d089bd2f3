package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-transcriber/internal/document"
)

// Process runs the per-video pipeline. The final document path doubles as
// the resumption checkpoint: if it already exists the whole pipeline is a
// no-op. Failures are contained to this video; the temp workspace is removed
// on every exit path.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	finalPath := filepath.Join(p.cfg.Paths.Transcribed, base+".docx")

	if _, err := os.Stat(finalPath); err == nil {
		p.logger.Info(ctx, "Output %s already exists, skipping %s", finalPath, videoPath)
		return nil
	}

	start := time.Now()
	p.logger.Info(ctx, "Starting processing: %s", videoPath)

	workDir, err := os.MkdirTemp("", "transcriber-*")
	if err != nil {
		return fmt.Errorf("create temp workspace: %w", err)
	}
	defer p.cleanupWorkspace(ctx, workDir)

	segmentsDir := workDir
	if p.cfg.Paths.Segments != "" {
		if err := os.MkdirAll(p.cfg.Paths.Segments, 0755); err != nil {
			return fmt.Errorf("create segments dir: %w", err)
		}
		segmentsDir = p.cfg.Paths.Segments
	}

	segments, err := p.segmentAudio(ctx, videoPath, workDir, segmentsDir)
	if err != nil {
		p.logger.Error(ctx, "Audio segmentation failed for %s: %v", videoPath, err)
		return fmt.Errorf("segment audio: %w", err)
	}

	var fragments []string
	if p.transcriber == nil {
		p.logger.Info(ctx, "Transcription disabled, using placeholder for %s", videoPath)
	} else {
		fragments = p.transcribeSegments(ctx, segments)
	}

	docs := p.renderFragments(ctx, workDir, fragments)
	if len(docs) == 0 {
		docs = []string{p.renderPlaceholder(ctx, workDir, videoPath)}
	}

	if err := document.Merge(ctx, docs, finalPath, p.logger); err != nil {
		return fmt.Errorf("merge documents: %w", err)
	}

	p.removeSegments(ctx, segments)

	p.logger.Info(ctx, "Finished %s in %.2f seconds", videoPath, time.Since(start).Seconds())
	return nil
}

// renderFragments converts surviving transcript fragments, in segment order,
// into intermediate document snapshots inside the workspace. Dropped
// fragments contribute nothing.
func (p *implProcessor) renderFragments(ctx context.Context, workDir string, fragments []string) []string {
	var docs []string
	for i, frag := range fragments {
		if frag == "" {
			continue
		}
		path := filepath.Join(workDir, fmt.Sprintf("transcript_%03d.json", i+1))
		if err := document.FromMarkdown(frag).Save(path); err != nil {
			p.logger.Error(ctx, "Failed to render segment %d: %v", i+1, err)
			continue
		}
		docs = append(docs, path)
	}
	return docs
}

// renderPlaceholder writes the single substitute document used when no real
// transcription is available, so the job is never merge-empty.
func (p *implProcessor) renderPlaceholder(ctx context.Context, workDir, videoPath string) string {
	var text string
	if p.transcriber == nil {
		text = fmt.Sprintf("Audio was extracted from %s. Transcription is disabled because the API is unavailable.", videoPath)
	} else {
		text = fmt.Sprintf("Could not obtain a transcription for the audio from %s. Check the logs for details.", videoPath)
		p.logger.Warn(ctx, "No segment produced a transcription for %s", videoPath)
	}

	path := filepath.Join(workDir, "placeholder.json")
	if err := document.Placeholder(text).Save(path); err != nil {
		p.logger.Error(ctx, "Failed to write placeholder document: %v", err)
	}
	return path
}
