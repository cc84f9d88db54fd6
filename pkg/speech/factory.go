package speech

import (
	"context"

	"fridge-inventory/config"
	"fridge-inventory/pkg/gemini"
)

// FromConfig builds the configured transcriber. It returns nil, nil when
// transcription is disabled.
func FromConfig(ctx context.Context, cfg config.SpeechConfig) (Transcriber, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "google":
		tr, err := NewGoogle(ctx, GoogleConfig{
			CredentialsPath: cfg.CredentialsPath,
			APIKey:          cfg.APIKey,
			LanguageCode:    cfg.LanguageCode,
			Endpoint:        cfg.Endpoint,
		})
		if err != nil {
			return nil, err
		}
		return tr, nil
	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.Endpoint,
		})
		if err != nil {
			return nil, err
		}
		return NewGemini(client), nil
	default:
		return nil, ErrUnknownEngine
	}
}
