package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &geminiImpl{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, transformContents(req.Messages), transformConfig(req))
	if err != nil {
		if isRateLimited(err) {
			return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("gemini: API call failed: %w", err)
	}

	return transformResponse(resp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func transformConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		cfg.SystemInstruction = &genai.Content{Parts: transformParts(req.SystemInstruction.Parts)}
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.JSONOutput {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}

func transformContents(msgs []Content) []*genai.Content {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, msg := range msgs {
		role := roleUser
		if msg.Role == "assistant" || msg.Role == roleModel {
			role = roleModel
		}
		contents = append(contents, &genai.Content{Role: role, Parts: transformParts(msg.Parts)})
	}
	return contents
}

func transformParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.InlineData != nil {
			out = append(out, &genai.Part{InlineData: &genai.Blob{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data}})
			continue
		}
		out = append(out, &genai.Part{Text: p.Text})
	}
	return out
}

// transformResponse converts the SDK response to the package format
func transformResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{
		Content: Content{Role: roleModel},
		Usage:   &Usage{},
	}
	if resp == nil {
		return out
	}

	if resp.UsageMetadata != nil {
		out.Usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.Usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		out.Usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.Text == "" {
			continue
		}
		out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
	}
	return out
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusTooManyRequests
	}
	return false
}
