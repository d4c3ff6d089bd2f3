package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// segment is one bounded-duration slice of a video's audio track. The index
// is 1-based and matches the zero-padded counter in the file name, so lexical
// order of segment files equals chronological order.
type segment struct {
	index    int
	path     string
	duration float64
}

// segmentAudio extracts the full audio track of videoPath into a working
// buffer inside workDir, then peels bounded-duration segments off its front
// until the stream is exhausted. Segment files are written to segmentsDir.
//
// Extraction failures abort the video. Probe failures end the loop: the
// buffer remainder at that point is a trimming artifact, not meaningful
// audio, and is discarded with the workspace.
func (p *implProcessor) segmentAudio(ctx context.Context, videoPath, workDir, segmentsDir string) ([]segment, error) {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	ext := "." + p.cfg.Audio.Format
	target := float64(p.cfg.Audio.SegmentDuration)

	buffer := filepath.Join(workDir, "working_buffer"+ext)

	p.logger.Info(ctx, "Extracting audio track: %s", videoPath)
	extractArgs := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", p.cfg.Audio.Format,
		"-ab", p.cfg.Audio.Bitrate,
		"-y",
		buffer,
	}
	if _, err := p.executor.Execute(ctx, "ffmpeg", extractArgs...); err != nil {
		return nil, fmt.Errorf("extract full audio: %w", err)
	}

	var segments []segment
	for count := 1; ; count++ {
		remaining, err := p.probeDuration(ctx, buffer)
		if err != nil {
			p.logger.Error(ctx, "Probe failed, stopping after %d segments: %v", count-1, err)
			break
		}
		if remaining < 1 {
			p.logger.Info(ctx, "End of audio reached after %d segments", count-1)
			break
		}

		sliceLen := target
		if remaining < target {
			sliceLen = remaining
		}

		segPath := filepath.Join(segmentsDir, fmt.Sprintf("%s_audio_%03d%s", base, count, ext))
		p.logger.Info(ctx, "Creating audio segment %d (%.2f seconds)", count, sliceLen)

		sliceArgs := []string{
			"-i", buffer,
			"-t", formatSeconds(sliceLen),
			"-acodec", "copy",
			"-y",
			segPath,
		}
		if _, err := p.executor.Execute(ctx, "ffmpeg", sliceArgs...); err != nil {
			return nil, fmt.Errorf("extract segment %d: %w", count, err)
		}

		segments = append(segments, segment{index: count, path: segPath, duration: sliceLen})

		if remaining <= target {
			p.logger.Info(ctx, "End of audio reached after %d segments", count)
			break
		}

		if err := p.trimBuffer(ctx, buffer, workDir, sliceLen, ext); err != nil {
			return nil, fmt.Errorf("trim working buffer: %w", err)
		}
	}

	return segments, nil
}

// probeDuration returns the remaining duration of the working buffer in
// seconds.
func (p *implProcessor) probeDuration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	out, err := p.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", out, err)
	}
	return d, nil
}

// trimBuffer re-extracts everything after offset into a scratch file and
// atomically renames it over the buffer.
func (p *implProcessor) trimBuffer(ctx context.Context, buffer, workDir string, offset float64, ext string) error {
	scratch := filepath.Join(workDir, "trim_scratch"+ext)
	args := []string{
		"-i", buffer,
		"-ss", formatSeconds(offset),
		"-acodec", "copy",
		"-y",
		scratch,
	}
	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return err
	}
	return replaceFile(scratch, buffer)
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
