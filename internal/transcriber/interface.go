package transcriber

import "context"

// Transcriber converts audio bytes into transcript text via a speech-to-text
// model. Implementations must be safe for concurrent use.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
