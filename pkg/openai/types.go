package openai

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRateLimited is returned when the API answers with HTTP 429.
var ErrRateLimited = errors.New("openai: rate limited")

// Config holds client configuration
type Config struct {
	Flavor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills flavor defaults
func (c *Config) Validate() error {
	if c.Flavor == "" {
		c.Flavor = FlavorOpenAI
	}
	def, ok := defaults[c.Flavor]
	if !ok {
		return fmt.Errorf("openai: unknown flavor %q", c.Flavor)
	}
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = def.model
	}
	if c.BaseURL == "" {
		c.BaseURL = def.baseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	flavor     string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a chat completion request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONOutput requests response_format json_object.
	JSONOutput bool
}

// Message is one chat turn
type Message struct {
	Role    string
	Content string
}

// Response represents a chat completion response
type Response struct {
	Content string
	Model   string
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types of the chat completions API
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
