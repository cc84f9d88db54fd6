package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-inventory/config"
	"fridge-inventory/pkg/gemini"
)

func TestGoogleTranscriber(t *testing.T) {
	var got map[string]map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/speech:recognize"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"alternatives": [{"transcript": "dodaj dwa mleka", "confidence": 0.93}]},
			{"alternatives": [{"transcript": " na górną półkę "}]},
			{"alternatives": []}
		]}`))
	}))
	defer ts.Close()

	tr, err := NewGoogle(context.Background(), GoogleConfig{
		Endpoint:   ts.URL + "/",
		HTTPClient: ts.Client(),
	})
	require.NoError(t, err)

	text, err := tr.Transcribe(context.Background(), Request{Audio: []byte("voice"), MIMEType: "audio/ogg"})
	require.NoError(t, err)

	assert.Equal(t, "dodaj dwa mleka na górną półkę", text)
	assert.Equal(t, "OGG_OPUS", got["config"]["encoding"])
	assert.Equal(t, "pl-PL", got["config"]["languageCode"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("voice")), got["audio"]["content"])
}

func TestGoogleTranscriber_Error(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "denied"}}`))
	}))
	defer ts.Close()

	tr, err := NewGoogle(context.Background(), GoogleConfig{Endpoint: ts.URL + "/", HTTPClient: ts.Client()})
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), Request{Audio: []byte("voice")})
	assert.Error(t, err)
}

func TestNewGoogle_RequiresCredentials(t *testing.T) {
	_, err := NewGoogle(context.Background(), GoogleConfig{})
	assert.ErrorIs(t, err, ErrNoCredentials)

	_, err = NewGoogle(context.Background(), GoogleConfig{CredentialsJSON: []byte("not json")})
	assert.Error(t, err)
}

func TestGoogleEncoding(t *testing.T) {
	tests := []struct {
		mime     string
		encoding string
		rate     int64
	}{
		{"audio/ogg; codecs=opus", "OGG_OPUS", 48000},
		{"audio/webm", "WEBM_OPUS", 48000},
		{"audio/x-wav", "LINEAR16", 0},
		{"audio/flac", "FLAC", 0},
		{"", "ENCODING_UNSPECIFIED", 0},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			enc, rate := googleEncoding(tt.mime)
			assert.Equal(t, tt.encoding, enc)
			assert.Equal(t, tt.rate, rate)
		})
	}
}

type fakeGemini struct {
	got  *gemini.Request
	text string
	err  error
}

func (f *fakeGemini) GenerateContent(_ context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &gemini.Response{Content: gemini.Content{Parts: []gemini.Part{{Text: f.text}}}}, nil
}

func (f *fakeGemini) Model() string { return "gemini-test" }

func TestGeminiTranscriber(t *testing.T) {
	client := &fakeGemini{text: " zjadłem jogurt \n"}

	text, err := NewGemini(client).Transcribe(context.Background(), Request{Audio: []byte{1, 2, 3}})
	require.NoError(t, err)

	assert.Equal(t, "zjadłem jogurt", text)
	parts := client.got.Messages[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "audio/ogg", parts[1].InlineData.MIMEType)
	assert.Equal(t, []byte{1, 2, 3}, parts[1].InlineData.Data)

	_, err = NewGemini(&fakeGemini{err: errors.New("boom")}).Transcribe(context.Background(), Request{Audio: []byte{1}})
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	tr, err := FromConfig(context.Background(), config.SpeechConfig{})
	require.NoError(t, err)
	assert.Nil(t, tr)

	_, err = FromConfig(context.Background(), config.SpeechConfig{Provider: "whisper"})
	assert.ErrorIs(t, err, ErrUnknownEngine)

	tr, err = FromConfig(context.Background(), config.SpeechConfig{Provider: "gemini", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &GeminiTranscriber{}, tr)
}
