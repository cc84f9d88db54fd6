package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/inventory"
	"fridge-inventory/internal/voice"
	pkgLog "fridge-inventory/pkg/log"
	pkgTelegram "fridge-inventory/pkg/telegram"
)

const processTimeout = 90 * time.Second

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler. When secretToken is set, updates
// without the matching secret token header are rejected.
func New(l pkgLog.Logger, uc voice.UseCase, inventoryUC inventory.UseCase, bot *pkgTelegram.Bot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		inventoryUC: inventoryUC,
		bot:         bot,
		secretToken: secretToken,
	}
}
