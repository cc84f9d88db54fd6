package interpreter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/llmprovider"
	"fridge-inventory/pkg/log"
)

type fakeGenerator struct {
	text string
	err  error
	got  *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage("assistant", f.text),
		ProviderName: "fake",
	}, nil
}

func TestInterpret_ParsesActions(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n" + `{
		"actions": [
			{"type": "add_item", "item_name": "mleko", "quantity": 2, "shelf_id": 1},
			{"type": "remove_item", "item_name": "masło", "quantity": 1, "shelf_id": null},
			{"type": "info", "item_name": "", "quantity": 0}
		],
		"message": "Dodaję mleko",
		"needs_clarification": false,
		"clarification_question": null
	}` + "\n```"}
	it := New(gen, log.NewNop())

	res, err := it.Interpret(context.Background(), voice.InterpretInput{
		Text:           "dodaj dwa mleka na górną półkę i zużyłem masło",
		Context:        `{"containers":[]}`,
		DefaultShelfID: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, []voice.ParsedAction{
		{Type: voice.ActionAddItem, ItemName: "mleko", Quantity: 2, ShelfID: 1},
		{Type: voice.ActionRemoveItem, ItemName: "masło", Quantity: 1, ShelfID: 0},
		{Type: voice.ActionInfo},
	}, res.Actions)
	assert.Equal(t, "Dodaję mleko", res.Message)
	assert.False(t, res.NeedsClarification)

	require.NotNil(t, gen.got)
	assert.True(t, gen.got.JSONOutput)
	user := gen.got.Messages[0].Parts[0].Text
	assert.Contains(t, user, "dodaj dwa mleka")
	assert.Contains(t, user, "Domyślna półka: 3")
	assert.Contains(t, user, `{"containers":[]}`)
}

func TestInterpret_Clarification(t *testing.T) {
	gen := &fakeGenerator{text: `Oto odpowiedź: {"actions": [], "message": "", "needs_clarification": true, "clarification_question": "Która półka?"}`}

	res, err := New(gen, log.NewNop()).Interpret(context.Background(), voice.InterpretInput{Text: "dodaj ser"})
	require.NoError(t, err)

	assert.True(t, res.NeedsClarification)
	assert.Equal(t, "Która półka?", res.ClarificationQuestion)
	assert.Empty(t, res.Actions)
	assert.Contains(t, gen.got.Messages[0].Parts[0].Text, "Domyślna półka: brak")
}

func TestInterpret_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"prose", "Nie wiem"},
		{"broken json", `{"actions": [`},
		{"missing actions", `{"message": "x", "needs_clarification": false}`},
		{"missing clarification flag", `{"actions": [], "message": "x"}`},
		{"action without type", `{"actions": [{"item_name": "mleko", "quantity": 1}], "needs_clarification": false}`},
		{"mutation without quantity", `{"actions": [{"type": "update_item", "item_name": "mleko"}], "needs_clarification": false}`},
		{"fractional quantity", `{"actions": [{"type": "add_item", "item_name": "mleko", "quantity": 1.5}], "needs_clarification": false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&fakeGenerator{text: tt.text}, log.NewNop()).Interpret(context.Background(), voice.InterpretInput{Text: "x"})
			assert.ErrorIs(t, err, voice.ErrMalformedInterpretation)
		})
	}
}

func TestInterpret_ProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"rate limited", fmt.Errorf("%w: %w", llmprovider.ErrAllProvidersFailed, llmprovider.ErrProviderRateLimited), voice.ErrInterpreterRateLimited},
		{"down", fmt.Errorf("%w: timeout", llmprovider.ErrAllProvidersFailed), voice.ErrInterpreterUnavailable},
		{"no providers", llmprovider.ErrNoProvidersConfigured, voice.ErrInterpreterUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&fakeGenerator{err: tt.err}, log.NewNop()).Interpret(context.Background(), voice.InterpretInput{Text: "x"})
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, errors.Is(err, voice.ErrMalformedInterpretation))
		})
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, sanitizeJSONResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, sanitizeJSONResponse("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, sanitizeJSONResponse(`Sure! {"a":{"b":2}} Hope it helps`))
	assert.Equal(t, "no json", sanitizeJSONResponse("no json"))
}
