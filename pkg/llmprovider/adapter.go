package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fridge-inventory/pkg/gemini"
	"fridge-inventory/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		JSONOutput:        req.JSONOutput,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		if errors.Is(err, gemini.ErrRateLimited) {
			return nil, fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		}
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        convertGeminiUsage(resp.Usage),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.InlineData != nil {
			parts[i].InlineData = &gemini.Blob{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: "assistant", Parts: parts}
}

func convertGeminiUsage(u *gemini.Usage) *Usage {
	if u == nil {
		return &Usage{}
	}
	return &Usage{InputTokens: u.InputTokens, OutputTokens: u.OutputTokens, TotalTokens: u.TotalTokens}
}

// OpenAIAdapter adapts pkg/openai (OpenAI, DeepSeek, Qwen) to llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IClient
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface. Chat completion APIs accept
// text only, so requests carrying inline data are rejected.
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages, err := convertToOpenAIMessages(req.Messages)
	if err != nil {
		return nil, err
	}

	openAIReq := &openai.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.JSONOutput,
	}
	if req.SystemInstruction != nil {
		openAIReq.SystemInstruction = joinText(req.SystemInstruction.Parts)
	}

	resp, err := a.client.GenerateContent(ctx, openAIReq)
	if err != nil {
		if errors.Is(err, openai.ErrRateLimited) {
			return nil, fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		}
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage:        &Usage{},
	}
	if resp.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: resp.Content})
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.client.Flavor()
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(msgs []Message) ([]openai.Message, error) {
	messages := make([]openai.Message, 0, len(msgs))
	for _, msg := range msgs {
		for _, p := range msg.Parts {
			if p.InlineData != nil {
				return nil, fmt.Errorf("%w: inline %s", ErrUnsupportedContent, p.InlineData.MIMEType)
			}
		}
		messages = append(messages, openai.Message{Role: msg.Role, Content: joinText(msg.Parts)})
	}
	return messages, nil
}

func joinText(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}
