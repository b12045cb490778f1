package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	// Префикс ключей клиентов
	customerKeyPrefix = "customer:"

	// TTL для кэша
	defaultCacheTTL = 15 * time.Minute
)

// CustomerCache кеш клиентов по ID
type CustomerCache interface {
	// GetCustomer возвращает nil без ошибки, если ключа нет в кеше
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	SetCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}

// RedisCacheRepository реализует кеширование клиентов с использованием Redis
type RedisCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisCacheRepository создает новый экземпляр Redis репозитория и проверяет соединение
func NewRedisCacheRepository(redisAddr, redisPassword string, redisDB int, ttl time.Duration, log *logger.Logger) (*RedisCacheRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	// Проверяем соединение с Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorw("Failed to connect to Redis", "error", err)
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Infow("Connected to Redis successfully", "addr", redisAddr)
	return NewRedisCacheFromClient(client, ttl, log), nil
}

// NewRedisCacheFromClient оборачивает готовый клиент Redis
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisCacheRepository {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCacheRepository{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Close закрывает соединение с Redis
func (r *RedisCacheRepository) Close() error {
	return r.client.Close()
}

func customerKey(id int64) string {
	return fmt.Sprintf("%s%d", customerKeyPrefix, id)
}

// SetCustomer кеширует клиента в Redis
func (r *RedisCacheRepository) SetCustomer(ctx context.Context, customer domain.Customer) error {
	data, err := json.Marshal(customer)
	if err != nil {
		r.log.Errorw("Failed to marshal customer for caching", "error", err, "customerID", customer.ID)
		return fmt.Errorf("failed to marshal customer: %w", err)
	}

	if err := r.client.Set(ctx, customerKey(customer.ID), data, r.ttl).Err(); err != nil {
		r.log.Errorw("Failed to cache customer in Redis", "error", err, "customerID", customer.ID)
		return fmt.Errorf("failed to cache customer: %w", err)
	}

	r.log.Debugw("Customer cached successfully", "customerID", customer.ID)
	return nil
}

// GetCustomer получает клиента из кеша
func (r *RedisCacheRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	data, err := r.client.Get(ctx, customerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.log.Debugw("Customer not found in cache", "customerID", id)
			return nil, nil
		}
		r.log.Errorw("Error getting customer from Redis", "error", err, "customerID", id)
		return nil, fmt.Errorf("failed to get customer from cache: %w", err)
	}

	var customer domain.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		r.log.Errorw("Failed to unmarshal cached customer", "error", err, "customerID", id)
		return nil, fmt.Errorf("failed to unmarshal cached customer: %w", err)
	}

	r.log.Debugw("Customer retrieved from cache", "customerID", id)
	return &customer, nil
}

// DeleteCustomer удаляет клиента из кеша
func (r *RedisCacheRepository) DeleteCustomer(ctx context.Context, id int64) error {
	if err := r.client.Del(ctx, customerKey(id)).Err(); err != nil {
		r.log.Errorw("Failed to delete customer from cache", "error", err, "customerID", id)
		return fmt.Errorf("failed to delete customer from cache: %w", err)
	}

	r.log.Debugw("Customer deleted from cache", "customerID", id)
	return nil
}
