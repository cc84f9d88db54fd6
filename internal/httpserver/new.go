package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	inventoryHTTP "fridge-inventory/internal/inventory/delivery/http"
	"fridge-inventory/internal/middleware"
	voiceHTTP "fridge-inventory/internal/voice/delivery/http"
	tgDelivery "fridge-inventory/internal/voice/delivery/telegram"
	"fridge-inventory/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// Pinger reports whether the storage backend is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	db         Pinger
	metrics    http.Handler
	middleware middleware.Middleware

	// Domains
	inventoryHandler inventoryHTTP.Handler
	voiceHandler     voiceHTTP.Handler
	telegramHandler  tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB             Pinger
	MetricsHandler http.Handler
	Middleware     middleware.Middleware

	InventoryHandler inventoryHTTP.Handler
	VoiceHandler     voiceHTTP.Handler
	// TelegramHandler is optional; the webhook route is skipped when nil.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		shutdownTimeout:  shutdownTimeout,
		db:               cfg.DB,
		metrics:          cfg.MetricsHandler,
		middleware:       cfg.Middleware,
		inventoryHandler: cfg.InventoryHandler,
		voiceHandler:     cfg.VoiceHandler,
		telegramHandler:  cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.inventoryHandler == nil {
		return errors.New("inventory handler is required")
	}
	if srv.voiceHandler == nil {
		return errors.New("voice handler is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
