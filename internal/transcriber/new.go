package transcriber

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
)

type implTranscriber struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  logger.Logger
}

// New creates a Gemini-backed Transcriber. An error here means the service
// is unusable for the whole run; callers are expected to fall back to
// placeholder documents rather than abort.
func New(ctx context.Context, apiKey, model string, timeout time.Duration, log logger.Logger) (Transcriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implTranscriber{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  log,
	}, nil
}
