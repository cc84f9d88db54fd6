package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// ErrRateLimited is returned when the API answers with HTTP 429.
var ErrRateLimited = errors.New("gemini: rate limited")

// Config holds Gemini client configuration
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint, mostly for tests.
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// geminiImpl is the internal implementation of IGemini
type geminiImpl struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// Request represents a Gemini generation request
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	// JSONOutput asks the model for an application/json response body.
	JSONOutput bool
}

// Content represents a message content
type Content struct {
	Role  string
	Parts []Part
}

// Part is either text or inline binary data such as audio.
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline binary content
type Blob struct {
	MIMEType string
	Data     []byte
}

// Response represents a Gemini generation response
type Response struct {
	Content Content
	Usage   *Usage
}

// Text joins every text part of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var out string
	for _, p := range r.Content.Parts {
		out += p.Text
	}
	return out
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
