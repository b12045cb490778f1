package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dhoini/Customer-microservice/internal/app"
	"github.com/Dhoini/Customer-microservice/internal/config"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

func main() {
	// Код выхода выставляется после отработки всех defer в run
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(".env", ".", "./config")
	if err != nil {
		logger.New(logger.INFO).Errorw("Failed to load configuration", "error", err)
		return err
	}

	// Инициализируем логгер
	log := logger.NewWithEncoding(logger.ParseLevel(cfg.Log.Level), cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	log.Infow("Customer microservice starting up...", "env", cfg.App.Env)

	// Контекст отменяется по SIGINT/SIGTERM для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, log)
}

// serve поднимает приложение и блокируется до остановки
func serve(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Errorw("Failed to initialize application", "error", err)
		return err
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		log.Errorw("Application stopped with error", "error", err)
		return err
	}

	log.Infow("Cleanup finished. Goodbye!")
	return nil
}
