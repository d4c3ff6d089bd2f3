package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// transcribeSegments maps every segment to its transcript fragment using a
// bounded pool of concurrent model calls. The returned slice is indexed by
// segment order, not completion order; a failed segment leaves an empty
// fragment and is never retried.
func (p *implProcessor) transcribeSegments(ctx context.Context, segments []segment) []string {
	fragments := make([]string, len(segments))

	sem := make(chan struct{}, p.cfg.Performance.TranscriptionWorkers)
	var wg sync.WaitGroup

	for i, seg := range segments {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			p.logger.Warn(ctx, "Transcription cancelled after %d segments submitted", i)
			wg.Wait()
			return fragments
		}

		wg.Add(1)
		go func(i int, seg segment) {
			defer wg.Done()
			defer func() { <-sem }()

			text, err := p.transcribeSegment(ctx, seg)
			if err != nil {
				p.logger.Error(ctx, "Transcription failed for %s: %v", seg.path, err)
				return
			}
			fragments[i] = text
		}(i, seg)
	}

	wg.Wait()
	return fragments
}

// transcribeSegment reads one segment file and sends it to the model.
func (p *implProcessor) transcribeSegment(ctx context.Context, seg segment) (string, error) {
	start := time.Now()
	p.logger.Info(ctx, "Starting transcription: %s", seg.path)

	audio, err := os.ReadFile(seg.path)
	if err != nil {
		return "", err
	}

	text, err := p.transcriber.Transcribe(ctx, audio, mimeTypeFor(seg.path))
	if err != nil {
		return "", err
	}

	p.logger.Info(ctx, "Transcription completed in %.2f seconds for %s",
		time.Since(start).Seconds(), seg.path)
	return text, nil
}

// mimeTypeFor infers the audio mime type from the file extension.
func mimeTypeFor(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return "audio/" + ext
}
