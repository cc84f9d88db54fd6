package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fridge-inventory/config"
	_ "fridge-inventory/docs" // Swagger docs
	"fridge-inventory/internal/httpserver"
	inventoryHTTP "fridge-inventory/internal/inventory/delivery/http"
	"fridge-inventory/internal/inventory/repository/sqlstore"
	inventoryUC "fridge-inventory/internal/inventory/usecase"
	"fridge-inventory/internal/middleware"
	voiceHTTP "fridge-inventory/internal/voice/delivery/http"
	tgDelivery "fridge-inventory/internal/voice/delivery/telegram"
	"fridge-inventory/internal/voice/interpreter"
	voiceUC "fridge-inventory/internal/voice/usecase"
	"fridge-inventory/pkg/llmprovider"
	"fridge-inventory/pkg/log"
	"fridge-inventory/pkg/metrics"
	"fridge-inventory/pkg/scope"
	"fridge-inventory/pkg/speech"
	"fridge-inventory/pkg/telegram"
)

// @title       Fridge Inventory API
// @description Household fridge and freezer inventory with Polish voice and text commands.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Fridge Inventory...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	dialect := sqlstore.Dialect(cfg.Database.Driver)
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:          dialect,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		applied, err := sqlstore.Migrate(ctx, db, dialect)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Infof(ctx, "Applied %d migration(s)", len(applied))
	}
	repo := sqlstore.New(db, dialect, logger)

	// 4. Language model
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm manager: %w", err)
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)

	// 5. Speech-to-text (optional)
	transcriber, err := speech.FromConfig(ctx, cfg.Speech)
	if err != nil {
		logger.Warnf(ctx, "Speech-to-text not available (optional): %v", err)
		transcriber = nil
	} else if transcriber == nil {
		logger.Info(ctx, "Speech-to-text disabled")
	}

	// 6. Use cases
	m := metrics.New()
	invUC := inventoryUC.New(repo, logger)
	vUC := voiceUC.New(logger, repo, interpreter.New(llm, logger), transcriber, m, cfg.Voice.Locale)

	// 7. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, vUC, invUC, bot, cfg.Telegram.SecretToken)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	mw := middleware.New(
		logger,
		scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL),
		cfg.Cookie,
		cfg.Voice.CommandRateLimitPerMin,
	)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ShutdownTimeout:  cfg.HTTPServer.ShutdownTimeout,
		DB:               db,
		MetricsHandler:   m.Handler(),
		Middleware:       mw,
		InventoryHandler: inventoryHTTP.New(logger, invUC),
		VoiceHandler: voiceHTTP.New(logger, vUC, invUC, voiceHTTP.Limits{
			MaxCommandLength: cfg.Voice.MaxCommandLength,
			MaxQueryLength:   cfg.Voice.MaxQueryLength,
		}),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 9. Run
	return httpServer.Run(ctx)
}
