package scheduler

import (
	"sync"

	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
)

type implScheduler struct {
	inputDir      string
	handler       JobHandler
	logger        logger.Logger
	maxConcurrent int

	sem chan struct{}
	wg  sync.WaitGroup

	mu        sync.Mutex
	processed int
	failed    int
}

// New creates a Scheduler submitting jobs to handler with at most
// maxConcurrent running at once.
func New(inputDir string, handler JobHandler, log logger.Logger, maxConcurrent int) Scheduler {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implScheduler{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		maxConcurrent: maxConcurrent,
		sem:           make(chan struct{}, maxConcurrent),
	}
}
