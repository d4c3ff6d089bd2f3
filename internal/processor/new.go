package processor

import (
	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/transcriber"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a Processor. A nil Transcriber disables transcription for the
// whole run: every video still gets a well-formed output document containing
// a placeholder paragraph instead of transcript text.
func New(cfg *config.Config, exec executor.Executor, tr transcriber.Transcriber, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		logger:      log,
	}
}
