package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/config"
	"github.com/Dhoini/Customer-microservice/internal/db"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

var errDSNRequired = errors.New("DATABASE_DSN is required for migrations")

// schemaMigrator применяет миграции схемы
type schemaMigrator interface {
	Migrate(ctx context.Context) (int, error)
}

func main() {
	// Код выхода выставляется после отработки всех defer в run
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(".env", ".", "./config")
	if err != nil {
		logger.New(logger.INFO).Errorw("Failed to load configuration", "error", err)
		return err
	}

	log := logger.NewWithEncoding(logger.ParseLevel(cfg.Log.Level), cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	if cfg.Database.DSN == "" {
		log.Errorw("Migrations are not possible", "error", errDSNRequired)
		return errDSNRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := db.NewDBClient(ctx, cfg.Database.DSN, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Errorw("Error closing database connection", "error", err)
		}
	}()

	return migrate(ctx, client, log)
}

// migrate применяет миграции и логирует результат
func migrate(ctx context.Context, client schemaMigrator, log *logger.Logger) error {
	applied, err := client.Migrate(ctx)
	if err != nil {
		log.Errorw("Migration failed", "error", err, "applied", applied)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("Migrations finished", "applied", applied)
	return nil
}
