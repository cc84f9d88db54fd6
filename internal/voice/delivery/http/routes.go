package http

import (
	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/middleware"
)

// RegisterRoutes maps the voice endpoints. Every route requires a session and
// is rate limited per user, since each call costs a model request.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	voice := rg.Group("/voice", mw.Auth(), mw.RateLimit())
	{
		voice.POST("/command", h.Command)
		voice.POST("/query", h.Query)
		voice.POST("/transcribe", h.Transcribe)
	}
}
