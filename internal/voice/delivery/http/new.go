package http

import (
	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/inventory"
	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/log"
)

const (
	DefaultMaxCommandLength = 500
	DefaultMaxQueryLength   = 200
	maxAudioBytes           = 10 << 20
)

// Handler is the public interface for the voice HTTP delivery layer.
type Handler interface {
	Command(c *gin.Context)
	Query(c *gin.Context)
	Transcribe(c *gin.Context)
}

// Limits bounds the accepted input sizes, in runes.
type Limits struct {
	MaxCommandLength int
	MaxQueryLength   int
}

type handler struct {
	l           log.Logger
	uc          voice.UseCase
	inventoryUC inventory.UseCase
	limits      Limits
}

// New creates a new HTTP handler for the voice pipeline. Zero limits fall back
// to the defaults.
func New(l log.Logger, uc voice.UseCase, inventoryUC inventory.UseCase, limits Limits) Handler {
	if limits.MaxCommandLength <= 0 {
		limits.MaxCommandLength = DefaultMaxCommandLength
	}
	if limits.MaxQueryLength <= 0 {
		limits.MaxQueryLength = DefaultMaxQueryLength
	}
	return &handler{
		l:           l,
		uc:          uc,
		inventoryUC: inventoryUC,
		limits:      limits,
	}
}
