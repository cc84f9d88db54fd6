package httpserver

import (
	"context"

	inventoryHTTP "fridge-inventory/internal/inventory/delivery/http"
	voiceHTTP "fridge-inventory/internal/voice/delivery/http"
)

// registerDomainRoutes mounts every domain under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase and its HTTP Handler in cmd/api
//  2. Pass the Handler through Config
//  3. Register Routes: mydomainHTTP.RegisterRoutes(api, h, srv.middleware)
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	inventoryHTTP.RegisterRoutes(api, srv.inventoryHandler, srv.middleware)
	srv.l.Infof(ctx, "Inventory domain registered")

	voiceHTTP.RegisterRoutes(api, srv.voiceHandler, srv.middleware)
	srv.l.Infof(ctx, "Voice domain registered")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
