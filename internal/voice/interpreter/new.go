// Package interpreter adapts a language model behind pkg/llmprovider to voice.Interpreter.
package interpreter

import (
	"context"

	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/llmprovider"
	"fridge-inventory/pkg/log"
)

// Generator is the part of llmprovider.Manager the interpreter needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

const defaultTemperature = 0.1

type implInterpreter struct {
	gen         Generator
	l           log.Logger
	temperature float64
}

var _ voice.Interpreter = (*implInterpreter)(nil)

// New creates an Interpreter over gen.
func New(gen Generator, l log.Logger) *implInterpreter {
	return &implInterpreter{
		gen:         gen,
		l:           l,
		temperature: defaultTemperature,
	}
}
