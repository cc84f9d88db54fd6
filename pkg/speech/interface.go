// Package speech converts recorded voice notes to text.
package speech

import "context"

// Transcriber turns audio into text in the configured language.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}

// Request is one piece of recorded audio.
type Request struct {
	Audio    []byte
	MIMEType string
}
