package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// CustomerRepository интерфейс для работы с клиентами
type CustomerRepository interface {
	// FindByEmail ищет среди неудаленных клиентов
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
	// FindByID возвращает клиента независимо от флага удаления
	FindByID(ctx context.Context, id int64) (domain.Customer, error)
	// FindAllNotDeleted возвращает активных клиентов в порядке создания
	FindAllNotDeleted(ctx context.Context) ([]domain.Customer, error)
	// Save вставляет клиента с нулевым ID или перезаписывает существующего
	Save(ctx context.Context, customer domain.Customer) (domain.Customer, error)
}

// InMemoryCustomerRepository реализация репозитория в памяти
type InMemoryCustomerRepository struct {
	customers map[int64]domain.Customer
	nextID    int64
	mutex     sync.RWMutex
	log       *logger.Logger
}

// NewInMemoryCustomerRepository создает новый репозиторий клиентов в памяти
func NewInMemoryCustomerRepository(log *logger.Logger) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: make(map[int64]domain.Customer),
		log:       log,
	}
}

// FindByEmail возвращает активного клиента по email
func (r *InMemoryCustomerRepository) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, c := range r.customers {
		if c.Email == email && !c.Deleted {
			return c, nil
		}
	}

	return domain.Customer{}, ErrNotFound
}

// FindByID возвращает клиента по ID
func (r *InMemoryCustomerRepository) FindByID(ctx context.Context, id int64) (domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customer, exists := r.customers[id]
	if !exists {
		return domain.Customer{}, ErrNotFound
	}

	return customer, nil
}

// FindAllNotDeleted возвращает всех активных клиентов
func (r *InMemoryCustomerRepository) FindAllNotDeleted(ctx context.Context) ([]domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customers := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		if !customer.Deleted {
			customers = append(customers, customer)
		}
	}

	sort.Slice(customers, func(i, j int) bool {
		return customers[i].ID < customers[j].ID
	})

	return customers, nil
}

// Save сохраняет клиента, назначая ID при первой записи
func (r *InMemoryCustomerRepository) Save(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// Проверка на уникальность email среди активных клиентов
	if !customer.Deleted {
		for id, c := range r.customers {
			if c.Email == customer.Email && !c.Deleted && id != customer.ID {
				return domain.Customer{}, ErrDuplicate
			}
		}
	}

	if customer.ID == 0 {
		r.nextID++
		customer.ID = r.nextID
	} else if _, exists := r.customers[customer.ID]; !exists {
		return domain.Customer{}, ErrNotFound
	}

	r.customers[customer.ID] = customer
	r.log.Debug("Customer %d stored in memory", customer.ID)

	return customer, nil
}
