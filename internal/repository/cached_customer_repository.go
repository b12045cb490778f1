package repository

import (
	"context"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// CachedCustomerRepository реализует CustomerRepository с кешированием FindByID
type CachedCustomerRepository struct {
	repo  CustomerRepository
	cache CustomerCache
	log   *logger.Logger
}

// NewCachedCustomerRepository создает новый репозиторий с кешированием
func NewCachedCustomerRepository(repo CustomerRepository, cache CustomerCache, log *logger.Logger) CustomerRepository {
	return &CachedCustomerRepository{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// FindByEmail всегда идет в основное хранилище
func (r *CachedCustomerRepository) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	return r.repo.FindByEmail(ctx, email)
}

// FindByID получает клиента по ID (сначала из кеша, потом из БД)
func (r *CachedCustomerRepository) FindByID(ctx context.Context, id int64) (domain.Customer, error) {
	cached, err := r.cache.GetCustomer(ctx, id)
	if err != nil {
		// Продолжаем выполнение при ошибке кеша
		r.log.Warnw("Error getting customer from cache", "error", err, "customerID", id)
	}
	if cached != nil {
		return *cached, nil
	}

	customer, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	if err := r.cache.SetCustomer(ctx, customer); err != nil {
		r.log.Warnw("Failed to cache customer after read", "error", err, "customerID", id)
	}

	return customer, nil
}

// FindAllNotDeleted всегда идет в основное хранилище
func (r *CachedCustomerRepository) FindAllNotDeleted(ctx context.Context) ([]domain.Customer, error) {
	return r.repo.FindAllNotDeleted(ctx)
}

// Save сохраняет клиента в БД и обновляет кеш
func (r *CachedCustomerRepository) Save(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	saved, err := r.repo.Save(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}

	if err := r.cache.SetCustomer(ctx, saved); err != nil {
		r.log.Warnw("Failed to cache customer after save", "error", err, "customerID", saved.ID)
		if delErr := r.cache.DeleteCustomer(ctx, saved.ID); delErr != nil {
			r.log.Warnw("Failed to invalidate customer cache", "error", delErr, "customerID", saved.ID)
		}
	}

	return saved, nil
}
