package usecase

import (
	"context"
	"strings"

	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/speech"
)

// Transcribe converts a voice note to command text.
func (uc *implUseCase) Transcribe(ctx context.Context, input voice.TranscribeInput) (string, error) {
	if uc.transcriber == nil {
		return "", voice.ErrNoTranscriber
	}
	if len(input.Audio) == 0 {
		return "", voice.ErrEmptyAudio
	}

	text, err := uc.transcriber.Transcribe(ctx, speech.Request{Audio: input.Audio, MIMEType: input.MIMEType})
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.Transcribe: %v", err)
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", voice.ErrEmptyTranscript
	}
	return text, nil
}
