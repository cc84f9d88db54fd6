package voice

import (
	"context"

	"fridge-inventory/internal/model"
)

// UseCase is the natural-language entrypoint over the inventory.
type UseCase interface {
	// ProcessCommand interprets and executes a command. Infrastructure
	// failures of the interpreter are returned as errors; everything else is
	// reported through the output.
	ProcessCommand(ctx context.Context, sc model.Scope, input CommandInput) (CommandOutput, error)
	// ProcessQuery answers "where is" and "how much" lookups without the interpreter.
	ProcessQuery(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)
	// Transcribe turns recorded speech into command text.
	Transcribe(ctx context.Context, input TranscribeInput) (string, error)
}

// Interpreter turns free text plus an inventory snapshot into proposed actions.
// Output that cannot be understood is reported as ErrMalformedInterpretation.
type Interpreter interface {
	Interpret(ctx context.Context, input InterpretInput) (ParseResult, error)
}
