package transcriber

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// transcriptionPrompt asks the model for clean prose in the spoken language.
const transcriptionPrompt = "Decode the following audio in the language in which it was spoken. " +
	"Remove filler words such as \"uh\", \"um\", \"ah\", etc. " +
	"Present the transcription as clear, coherent and grammatically correct text " +
	"in the language spoken, without unnecessary pauses or hesitation."

// Transcribe sends the audio inline to Gemini and returns the transcript
// text. The configured per-call deadline bounds the request.
func (t *implTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	t.logger.Debug(ctx, "Sending %d bytes (%s) to model %s", len(audio), mimeType, t.model)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(audio, mimeType),
			genai.NewPartFromText(transcriptionPrompt),
		}, genai.RoleUser),
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("response contained no text")
	}

	t.logger.Debug(ctx, "Transcription call finished in %s", time.Since(start))
	return text, nil
}
