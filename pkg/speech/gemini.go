package speech

import (
	"context"
	"fmt"
	"strings"

	"fridge-inventory/pkg/gemini"
)

const transcribePrompt = "Przepisz dokładnie to nagranie głosowe w języku polskim. Zwróć wyłącznie przepisany tekst, bez komentarzy."

// GeminiTranscriber sends the audio inline to a multimodal Gemini model.
type GeminiTranscriber struct {
	client gemini.IGemini
}

// NewGemini creates a transcriber over an existing Gemini client.
func NewGemini(client gemini.IGemini) *GeminiTranscriber {
	return &GeminiTranscriber{client: client}
}

// Transcribe implements Transcriber.
func (g *GeminiTranscriber) Transcribe(ctx context.Context, req Request) (string, error) {
	mimeType := req.MIMEType
	if mimeType == "" {
		mimeType = "audio/ogg"
	}

	resp, err := g.client.GenerateContent(ctx, &gemini.Request{
		Messages: []gemini.Content{{
			Role: "user",
			Parts: []gemini.Part{
				{Text: transcribePrompt},
				{InlineData: &gemini.Blob{MIMEType: mimeType, Data: req.Audio}},
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("speech: gemini transcription failed: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
