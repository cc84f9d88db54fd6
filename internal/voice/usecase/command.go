package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
)

const (
	resultSuccess       = "success"
	resultPartial       = "partial"
	resultFailed        = "failed"
	resultClarification = "clarification"
	resultNoActions     = "no_actions"
	resultError         = "error"
)

// ProcessCommand interprets text against a fresh snapshot and executes the proposed actions.
func (uc *implUseCase) ProcessCommand(ctx context.Context, sc model.Scope, input voice.CommandInput) (voice.CommandOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return voice.CommandOutput{}, voice.ErrEmptyCommand
	}

	trees, err := uc.repo.ListContainerTrees(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.ProcessCommand ListContainerTrees: %v", err)
		uc.metrics.ObserveCommand(resultError)
		return voice.CommandOutput{}, err
	}

	snap, err := buildSnapshot(trees, input.DefaultShelfID)
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.ProcessCommand buildSnapshot: %v", err)
		uc.metrics.ObserveCommand(resultError)
		return voice.CommandOutput{}, err
	}

	parsed, err := uc.interpret(ctx, voice.InterpretInput{
		Text:           text,
		Context:        snap.context,
		DefaultShelfID: snap.defaultShelfID,
	})
	if err != nil {
		uc.metrics.ObserveCommand(resultError)
		return voice.CommandOutput{}, err
	}

	if parsed.NeedsClarification {
		uc.metrics.ObserveCommand(resultClarification)
		return voice.CommandOutput{
			Success:               false,
			Actions:               []voice.ActionOutcome{},
			Message:               uc.orDefault(parsed.Message, uc.msg.fallbackMessage),
			NeedsClarification:    true,
			ClarificationQuestion: uc.orDefault(parsed.ClarificationQuestion, uc.msg.fallbackQuestion),
		}, nil
	}

	if len(parsed.Actions) == 0 {
		uc.metrics.ObserveCommand(resultNoActions)
		return voice.CommandOutput{
			Success: false,
			Actions: []voice.ActionOutcome{},
			Message: uc.orDefault(parsed.Message, uc.msg.genericFailure),
		}, nil
	}

	outcomes := uc.execute(ctx, sc, snap, parsed.Actions)
	success, message := uc.compose(outcomes, parsed.Message)

	uc.metrics.ObserveCommand(commandResult(outcomes, success))
	uc.l.Infof(ctx, "voice.usecase.ProcessCommand: user=%s actions=%d success=%t", sc.UserID, len(outcomes), success)

	return voice.CommandOutput{
		Success: success,
		Actions: outcomes,
		Message: message,
	}, nil
}

// interpret calls the interpreter once. Malformed output becomes the fixed
// clarification fallback; every other failure is returned as an
// unavailable or rate-limited error.
func (uc *implUseCase) interpret(ctx context.Context, input voice.InterpretInput) (voice.ParseResult, error) {
	start := time.Now()
	parsed, err := uc.interpreter.Interpret(ctx, input)
	uc.metrics.ObserveInterpret(time.Since(start))

	switch {
	case err == nil:
		return parsed, nil
	case errors.Is(err, voice.ErrMalformedInterpretation):
		uc.l.Warnf(ctx, "voice.usecase.interpret: falling back to clarification: %v", err)
		return uc.fallback(), nil
	case errors.Is(err, voice.ErrInterpreterRateLimited), errors.Is(err, voice.ErrInterpreterUnavailable):
		uc.l.Errorf(ctx, "voice.usecase.interpret: %v", err)
		return voice.ParseResult{}, err
	default:
		uc.l.Errorf(ctx, "voice.usecase.interpret: %v", err)
		return voice.ParseResult{}, fmt.Errorf("%w: %w", voice.ErrInterpreterUnavailable, err)
	}
}

func (uc *implUseCase) fallback() voice.ParseResult {
	return voice.ParseResult{
		Actions:               nil,
		Message:               uc.msg.fallbackMessage,
		NeedsClarification:    true,
		ClarificationQuestion: uc.msg.fallbackQuestion,
	}
}

func (uc *implUseCase) orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func commandResult(outcomes []voice.ActionOutcome, success bool) string {
	if success {
		return resultSuccess
	}
	for _, o := range outcomes {
		if o.Succeeded() {
			return resultPartial
		}
	}
	return resultFailed
}
