package interpreter

import (
	"context"
	"errors"
	"fmt"

	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/llmprovider"
)

// Interpret asks the model once for the actions behind input.Text.
func (it *implInterpreter) Interpret(ctx context.Context, input voice.InterpretInput) (voice.ParseResult, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: systemPrompt}}},
		Messages: []llmprovider.Message{
			llmprovider.TextMessage("user", buildUserMessage(input.Text, input.Context, input.DefaultShelfID)),
		},
		Temperature: it.temperature,
		JSONOutput:  true,
	}

	resp, err := it.gen.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(err, llmprovider.ErrProviderRateLimited) {
			return voice.ParseResult{}, fmt.Errorf("%w: %w", voice.ErrInterpreterRateLimited, err)
		}
		return voice.ParseResult{}, fmt.Errorf("%w: %w", voice.ErrInterpreterUnavailable, err)
	}

	raw := resp.Text()
	result, err := parseResult(raw)
	if err != nil {
		it.l.Warnf(ctx, "interpreter.Interpret: malformed output from %s: %v raw=%q", resp.ProviderName, err, raw)
		return voice.ParseResult{}, err
	}

	it.l.Debugf(ctx, "interpreter.Interpret: provider=%s actions=%d clarification=%t",
		resp.ProviderName, len(result.Actions), result.NeedsClarification)
	return result, nil
}
