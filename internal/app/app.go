package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	grpcapi "github.com/Dhoini/Customer-microservice/internal/api/grpc"
	grpchandlers "github.com/Dhoini/Customer-microservice/internal/api/grpc/handler"
	"github.com/Dhoini/Customer-microservice/internal/api/rest"
	"github.com/Dhoini/Customer-microservice/internal/api/rest/handlers"
	"github.com/Dhoini/Customer-microservice/internal/config"
	"github.com/Dhoini/Customer-microservice/internal/db"
	"github.com/Dhoini/Customer-microservice/internal/kafka"
	"github.com/Dhoini/Customer-microservice/internal/kafka/producer"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/internal/repository/postgres"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/internal/validator"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const systemMetricsInterval = 15 * time.Second

// App представляет собой контейнер для всех компонентов приложения
type App struct {
	Config          *config.Config
	Registry        *prometheus.Registry
	CustomerService service.CustomerService
	Router          *gin.Engine
	HTTPServer      *rest.Server
	GRPCServer      *grpcapi.Server
	Logger          *logger.Logger

	systemMetrics metrics.SystemMetrics
	closers       []func() error
}

// NewApp создает и инициализирует новый экземпляр приложения.
// Хранилище, кеш и Kafka подключаются только если заданы в конфигурации.
func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
		Logger:   log,
	}

	customerMetrics := metrics.NewCustomerMetrics(a.Registry, log)
	a.systemMetrics = metrics.NewSystemMetrics(a.Registry, log)

	repo, err := a.initRepository(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	events := a.initProducer(ctx)

	a.CustomerService = service.NewCustomerService(repo, validator.New(), log,
		service.WithEvents(events),
		service.WithMetrics(customerMetrics),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.Router = rest.SetupRouter(log, a.Registry, cfg.App.Name, handlers.NewCustomerHandler(a.CustomerService, log))
	a.HTTPServer = rest.NewServer(a.Router, cfg.Server, log)
	a.GRPCServer = grpcapi.NewServer(log)
	a.GRPCServer.RegisterServices(grpchandlers.NewCustomerHandler(a.CustomerService, log))

	return a, nil
}

func (a *App) initRepository(ctx context.Context) (repository.CustomerRepository, error) {
	cfg, log := a.Config, a.Logger

	var repo repository.CustomerRepository
	if cfg.Database.DSN == "" {
		log.Warnw("Database DSN is not set, using in-memory customer repository")
		repo = repository.NewInMemoryCustomerRepository(log)
	} else {
		if cfg.Database.Migrate {
			if err := migrate(ctx, cfg.Database.DSN, log); err != nil {
				return nil, err
			}
		}

		pool, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.PoolOptions{
			MaxConns:       cfg.Database.MaxConns,
			MinConns:       cfg.Database.MinConns,
			ConnectRetries: cfg.Database.ConnectRetries,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, func() error {
			pool.Close()
			return nil
		})
		repo = postgres.NewCustomerRepository(pool, log)
	}

	if cfg.Redis.Addr == "" {
		return repo, nil
	}

	redisCache, err := repository.NewRedisCacheRepository(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, log)
	if err != nil {
		// Не фатально, но предупреждаем
		log.Warnw("Failed to initialize Redis cache, continuing without caching", "error", err)
		return repo, nil
	}
	a.closers = append(a.closers, redisCache.Close)
	log.Infow("Using cached customer repository", "addr", cfg.Redis.Addr)

	return repository.NewCachedCustomerRepository(repo, redisCache, log), nil
}

func (a *App) initProducer(ctx context.Context) producer.CustomerProducer {
	cfg, log := a.Config, a.Logger

	if len(cfg.Kafka.Brokers) == 0 {
		log.Warnw("Kafka brokers are not set, customer events are disabled")
		return producer.NewNoopCustomerProducer(log)
	}

	if cfg.Kafka.EnsureTopics {
		spec := kafka.TopicSpec{Partitions: cfg.Kafka.Partitions, ReplicationFactor: cfg.Kafka.ReplicationFactor}
		if err := kafka.EnsureKafkaTopics(ctx, cfg.Kafka.Brokers, spec, log); err != nil {
			log.Warnw("Failed to ensure Kafka topics", "error", err)
		}
	}

	kafkaConfig := kafka.NewConfig(cfg.Kafka.Brokers, cfg.Kafka.ClientID)
	syncProducer, err := sarama.NewSyncProducer(kafkaConfig.Brokers, kafka.NewSaramaConfig(kafkaConfig, log))
	if err != nil {
		// Публикация событий не критична для основного флоу
		log.Errorw("Failed to initialize Kafka producer, continuing without event publishing", "error", err)
		return producer.NewNoopCustomerProducer(log)
	}

	customerProducer := producer.NewKafkaCustomerProducer(syncProducer, log)
	a.closers = append(a.closers, customerProducer.Close)
	log.Infow("Kafka producer initialized", "brokers", cfg.Kafka.Brokers)

	return customerProducer
}

func migrate(ctx context.Context, dsn string, log *logger.Logger) error {
	client, err := db.NewDBClient(ctx, dsn, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Errorw("Error closing migration connection", "error", err)
		}
	}()

	applied, err := client.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Infow("Database schema is up to date", "applied", applied)
	return nil
}

// Run запускает HTTP и gRPC серверы и блокируется до отмены ctx или ошибки сервера
func (a *App) Run(ctx context.Context) error {
	a.systemMetrics.StartRecording(systemMetricsInterval)

	errCh := make(chan error, 2)
	go func() {
		errCh <- a.HTTPServer.Start()
	}()
	go func() {
		errCh <- a.GRPCServer.Start(a.Config.GRPC.Port)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infow("Shutdown signal received")
	case runErr = <-errCh:
		a.Logger.Errorw("Server stopped unexpectedly", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Errorw("HTTP server shutdown error", "error", err)
		runErr = errors.Join(runErr, err)
	}
	a.GRPCServer.Stop()
	a.systemMetrics.Stop()

	return runErr
}

// Close освобождает внешние ресурсы в обратном порядке
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Logger.Errorw("Error closing resource", "error", err)
		}
	}
	a.closers = nil
}
