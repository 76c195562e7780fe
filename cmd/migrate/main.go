package main

import (
	"fmt"
	"os"

	"github.com/coop-erp/backend/internal/infrastructure/config"
	"github.com/coop-erp/backend/internal/infrastructure/logger"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	log.Info("running migrations", zap.String("database", cfg.Database.DBName))
	if err := persistence.Migrate(db.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("migrations complete")
	return nil
}
