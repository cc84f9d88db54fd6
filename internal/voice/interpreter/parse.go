package interpreter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"fridge-inventory/internal/voice"
)

var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// wireResult mirrors the JSON the model is asked for. Pointers tell absent
// fields apart from zero values.
type wireResult struct {
	Actions               *[]wireAction `json:"actions"`
	Message               string        `json:"message"`
	NeedsClarification    *bool         `json:"needs_clarification"`
	ClarificationQuestion *string       `json:"clarification_question"`
}

type wireAction struct {
	Type     string `json:"type"`
	ItemName string `json:"item_name"`
	Quantity *int   `json:"quantity"`
	ShelfID  *int   `json:"shelf_id"`
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
func sanitizeJSONResponse(text string) string {
	if matches := fencePattern.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// parseResult decodes and validates model output. Any schema mismatch is
// reported as voice.ErrMalformedInterpretation.
func parseResult(raw string) (voice.ParseResult, error) {
	cleaned := sanitizeJSONResponse(strings.TrimSpace(raw))
	if cleaned == "" {
		return voice.ParseResult{}, fmt.Errorf("%w: empty response", voice.ErrMalformedInterpretation)
	}

	var w wireResult
	if err := json.Unmarshal([]byte(cleaned), &w); err != nil {
		return voice.ParseResult{}, fmt.Errorf("%w: %w", voice.ErrMalformedInterpretation, err)
	}
	if w.Actions == nil {
		return voice.ParseResult{}, fmt.Errorf("%w: missing actions", voice.ErrMalformedInterpretation)
	}
	if w.NeedsClarification == nil {
		return voice.ParseResult{}, fmt.Errorf("%w: missing needs_clarification", voice.ErrMalformedInterpretation)
	}

	out := voice.ParseResult{
		Actions:            make([]voice.ParsedAction, 0, len(*w.Actions)),
		Message:            strings.TrimSpace(w.Message),
		NeedsClarification: *w.NeedsClarification,
	}
	if w.ClarificationQuestion != nil {
		out.ClarificationQuestion = strings.TrimSpace(*w.ClarificationQuestion)
	}

	for i, a := range *w.Actions {
		action := voice.ParsedAction{
			Type:     voice.ActionType(strings.TrimSpace(a.Type)),
			ItemName: a.ItemName,
		}
		if action.Type == "" {
			return voice.ParseResult{}, fmt.Errorf("%w: action %d has no type", voice.ErrMalformedInterpretation, i)
		}
		if a.Quantity != nil {
			action.Quantity = *a.Quantity
		} else if action.Type.IsMutation() {
			return voice.ParseResult{}, fmt.Errorf("%w: action %d has no quantity", voice.ErrMalformedInterpretation, i)
		}
		if a.ShelfID != nil {
			action.ShelfID = *a.ShelfID
		}
		out.Actions = append(out.Actions, action)
	}
	return out, nil
}
