package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gspeech "google.golang.org/api/speech/v1"
)

const defaultLanguageCode = "pl-PL"

// GoogleConfig configures the Cloud Speech-to-Text transcriber. Service
// account credentials take precedence over APIKey.
type GoogleConfig struct {
	CredentialsPath string
	CredentialsJSON []byte
	APIKey          string
	LanguageCode    string
	Endpoint        string
	HTTPClient      *http.Client
}

// GoogleTranscriber calls speech:recognize synchronously.
type GoogleTranscriber struct {
	svc          *gspeech.Service
	languageCode string
}

// NewGoogle creates a Cloud Speech-to-Text transcriber.
func NewGoogle(ctx context.Context, cfg GoogleConfig) (*GoogleTranscriber, error) {
	opts, err := googleOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gspeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech: failed to create service: %w", err)
	}

	lang := cfg.LanguageCode
	if lang == "" {
		lang = defaultLanguageCode
	}
	return &GoogleTranscriber{svc: svc, languageCode: lang}, nil
}

func googleOptions(ctx context.Context, cfg GoogleConfig) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.HTTPClient != nil {
		return append(opts, option.WithHTTPClient(cfg.HTTPClient)), nil
	}

	creds := cfg.CredentialsJSON
	if len(creds) == 0 && cfg.CredentialsPath != "" {
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("speech: unable to read credentials file: %w", err)
		}
		creds = data
	}

	switch {
	case len(creds) > 0:
		jwtCfg, err := google.JWTConfigFromJSON(creds, gspeech.CloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("speech: unable to parse credentials: %w", err)
		}
		opts = append(opts, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		return nil, ErrNoCredentials
	}
	return opts, nil
}

// Transcribe implements Transcriber.
func (g *GoogleTranscriber) Transcribe(ctx context.Context, req Request) (string, error) {
	encoding, sampleRate := googleEncoding(req.MIMEType)

	resp, err := g.svc.Speech.Recognize(&gspeech.RecognizeRequest{
		Config: &gspeech.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            sampleRate,
			LanguageCode:               g.languageCode,
			EnableAutomaticPunctuation: true,
		},
		Audio: &gspeech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(req.Audio),
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech: recognize failed: %w", err)
	}

	parts := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 {
			continue
		}
		if t := strings.TrimSpace(r.Alternatives[0].Transcript); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}

// googleEncoding maps a MIME type to the recognition encoding. Opus voice
// notes (Telegram, browsers) are recorded at 48 kHz.
func googleEncoding(mimeType string) (string, int64) {
	mt := strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0]))
	switch mt {
	case "audio/ogg", "audio/opus":
		return "OGG_OPUS", 48000
	case "audio/webm":
		return "WEBM_OPUS", 48000
	case "audio/flac", "audio/x-flac":
		return "FLAC", 0
	case "audio/wav", "audio/x-wav", "audio/wave":
		return "LINEAR16", 0
	case "audio/amr":
		return "AMR", 8000
	default:
		return "ENCODING_UNSPECIFIED", 0
	}
}
