package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/processor"
	"github.com/nguyentantai21042004/video-transcriber/internal/scheduler"
	"github.com/nguyentantai21042004/video-transcriber/internal/transcriber"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

var (
	flagConfig   string
	flagOutput   string
	flagDuration int
	flagWorkers  int
	flagTWorkers int
	flagFormat   string
	flagBitrate  string
	flagWatch    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transcriber",
		Short: "Transcribe a folder of videos into per-video docx documents",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "config.yaml", "path to config file")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "directory for audio segments (default: per-job temp workspace)")
	rootCmd.Flags().IntVarP(&flagDuration, "duration", "d", 0, "segment duration in seconds (default 600)")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "max concurrent videos (default: CPU count)")
	rootCmd.Flags().IntVar(&flagTWorkers, "transcription-workers", 0, "max concurrent transcription calls (default 10)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "audio format (mp3, aac, ogg, wav, ...)")
	rootCmd.Flags().StringVarP(&flagBitrate, "bitrate", "b", "", "audio bitrate (e.g. 128k, 192k, 320k)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "keep watching the input directory for new videos")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg)

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Folder Video Transcriber")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Input: %s", cfg.Paths.Video)
	log.Info(ctx, "Output: %s", cfg.Paths.Transcribed)
	log.Info(ctx, "Segment duration: %ds, format: %s @ %s",
		cfg.Audio.SegmentDuration, cfg.Audio.Format, cfg.Audio.Bitrate)
	log.Info(ctx, "Workers: %d videos, %d transcriptions",
		cfg.Performance.VideoWorkers, cfg.Performance.TranscriptionWorkers)

	if err := os.MkdirAll(cfg.Paths.Transcribed, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Initialization failure disables transcription for the whole run
	// instead of aborting: every video still gets a placeholder document.
	var tr transcriber.Transcriber
	tr, err = transcriber.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second, log)
	if err != nil {
		log.Error(ctx, "Gemini initialization failed, transcription disabled: %v", err)
		tr = nil
	} else {
		log.Info(ctx, "Gemini initialized, using model %s", cfg.Gemini.Model)
	}

	proc := processor.New(cfg, executor.New(), tr, log)
	sched := scheduler.New(cfg.Paths.Video, proc.Process, log, cfg.Performance.VideoWorkers)

	if flagWatch {
		if err := sched.Watch(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	}
	return sched.Run(ctx)
}

// applyFlags overlays explicitly set CLI flags onto the loaded config.
func applyFlags(cfg *config.Config) {
	if flagOutput != "" {
		cfg.Paths.Segments = flagOutput
	}
	if flagDuration > 0 {
		cfg.Audio.SegmentDuration = flagDuration
	}
	if flagWorkers > 0 {
		cfg.Performance.VideoWorkers = flagWorkers
	}
	if flagTWorkers > 0 {
		cfg.Performance.TranscriptionWorkers = flagTWorkers
	}
	if flagFormat != "" {
		cfg.Audio.Format = flagFormat
	}
	if flagBitrate != "" {
		cfg.Audio.Bitrate = flagBitrate
	}
}
