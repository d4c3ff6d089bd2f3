package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

var videoExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".flv", ".wmv"}

// Run processes every recognized video in the input directory through the
// bounded worker pool and waits for all jobs to finish. Per-job failures are
// logged and counted but never abort sibling jobs.
func (s *implScheduler) Run(ctx context.Context) error {
	videos, err := s.discoverVideos()
	if err != nil {
		return fmt.Errorf("discover videos: %w", err)
	}

	if len(videos) == 0 {
		s.logger.Warn(ctx, "No video files found in %s", s.inputDir)
		return nil
	}

	s.logger.Info(ctx, "Found %d video files to process", len(videos))

	for _, video := range videos {
		if err := s.submit(ctx, video); err != nil {
			break
		}
	}

	s.wg.Wait()
	s.logSummary(ctx)
	return nil
}

// Watch runs the initial scan, then keeps submitting videos created in the
// input directory until the context is cancelled.
func (s *implScheduler) Watch(ctx context.Context) error {
	if err := s.Run(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.inputDir); err != nil {
		return fmt.Errorf("watch %s: %w", s.inputDir, err)
	}

	s.logger.Info(ctx, "Watching %s for new videos (max concurrent: %d)", s.inputDir, s.maxConcurrent)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Waiting for ongoing jobs to complete...")
			s.wg.Wait()
			s.logSummary(ctx)
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isVideoFile(event.Name) {
				s.logger.Debug(ctx, "Ignoring non-video file: %s", event.Name)
				continue
			}

			s.logger.Info(ctx, "New video detected: %s", event.Name)
			// Small delay to let the file finish writing
			time.Sleep(500 * time.Millisecond)
			if err := s.submit(ctx, event.Name); err != nil {
				s.wg.Wait()
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// submit acquires a pool slot and runs the job in a goroutine. The only
// error it returns is context cancellation.
func (s *implScheduler) submit(ctx context.Context, videoPath string) error {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() { <-s.sem }()

		err := s.handler(ctx, videoPath)

		s.mu.Lock()
		s.processed++
		if err != nil {
			s.failed++
		}
		s.mu.Unlock()

		if err != nil {
			s.logger.Error(ctx, "Failed to process %s: %v", videoPath, err)
		}
	}()

	return nil
}

func (s *implScheduler) discoverVideos() ([]string, error) {
	entries, err := os.ReadDir(s.inputDir)
	if err != nil {
		return nil, err
	}

	var videos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isVideoFile(e.Name()) {
			videos = append(videos, filepath.Join(s.inputDir, e.Name()))
		}
	}
	return videos, nil
}

func (s *implScheduler) logSummary(ctx context.Context) {
	s.mu.Lock()
	processed, failed := s.processed, s.failed
	s.mu.Unlock()
	s.logger.Info(ctx, "Run complete: %d processed, %d failed", processed, failed)
}

func isVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}
