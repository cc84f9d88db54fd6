package usecase

import (
	"fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/log"
	"fridge-inventory/pkg/metrics"
	"fridge-inventory/pkg/speech"
)

type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	interpreter voice.Interpreter
	transcriber speech.Transcriber
	metrics     *metrics.Metrics
	msg         catalog
}

var _ voice.UseCase = (*implUseCase)(nil)

// New creates the command pipeline. transcriber and m may be nil.
// locale selects the message catalog ("pl" or "en"); anything else falls back to "pl".
func New(
	l log.Logger,
	repo repository.Repository,
	interpreter voice.Interpreter,
	transcriber speech.Transcriber,
	m *metrics.Metrics,
	locale string,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		interpreter: interpreter,
		transcriber: transcriber,
		metrics:     m,
		msg:         catalogFor(locale),
	}
}
