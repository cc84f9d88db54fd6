package cli

import (
	"context"
	"database/sql"
	"fmt"

	"fridge-inventory/internal/inventory"
	"fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/inventory/repository/sqlstore"
	inventoryUC "fridge-inventory/internal/inventory/usecase"
	"fridge-inventory/internal/voice"
	"fridge-inventory/internal/voice/interpreter"
	voiceUC "fridge-inventory/internal/voice/usecase"
	"fridge-inventory/pkg/llmprovider"
)

// openStore connects to the configured database.
func openStore(ctx context.Context) (*sql.DB, repository.Repository, error) {
	dialect := sqlstore.Dialect(cfg.Database.Driver)
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:          dialect,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return db, sqlstore.New(db, dialect, logger), nil
}

// newPipeline builds the inventory and voice use cases on repo. Transcription
// is not wired since the CLI only takes text.
func newPipeline(ctx context.Context, repo repository.Repository) (inventory.UseCase, voice.UseCase, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("llm manager: %w", err)
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)

	invUC := inventoryUC.New(repo, logger)
	vUC := voiceUC.New(logger, repo, interpreter.New(llm, logger), nil, nil, cfg.Voice.Locale)
	return invUC, vUC, nil
}
