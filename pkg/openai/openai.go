package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newClientImpl creates a new client implementation
func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		flavor:     cfg.Flavor,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", c.flavor, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.flavor, err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: API call failed: %w", c.flavor, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w (%s)", ErrRateLimited, c.flavor)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s: API error %d: %s", c.flavor, resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", c.flavor, err)
	}

	return c.transformResponse(&chatResp), nil
}

// Flavor returns the API family
func (c *clientImpl) Flavor() string {
	return c.flavor
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

func (c *clientImpl) transformRequest(req *Request) *chatRequest {
	out := &chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, chatMessage{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, chatMessage{Role: msg.Role, Content: msg.Content})
	}
	if req.JSONOutput {
		out.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	return out
}

func (c *clientImpl) transformResponse(resp *chatResponse) *Response {
	out := &Response{
		Model: resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.Model == "" {
		out.Model = c.model
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
	}
	return out
}
