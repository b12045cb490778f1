package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

const entityCustomer = "customer"

const (
	eventCreated = "customer.created"
	eventUpdated = "customer.updated"
	eventDeleted = "customer.deleted"
)

// CustomerService интерфейс сервиса для работы с клиентами
type CustomerService interface {
	Save(ctx context.Context, dto domain.RegistrationDto) (domain.ResponseDto, error)
	GetAll(ctx context.Context) ([]domain.ResponseDto, error)
	Get(ctx context.Context, id int64) (domain.ResponseDto, error)
	Update(ctx context.Context, dto domain.UpdateDto) (domain.ResponseDto, error)
	Delete(ctx context.Context, id int64) error
}

// Validator правила проверки входящих запросов
type Validator interface {
	CheckRegistration(dto domain.RegistrationDto) domain.ValidationErrors
	CheckUpdate(dto domain.UpdateDto) domain.ValidationErrors
}

// EventPublisher публикует события жизненного цикла клиента
type EventPublisher interface {
	PublishCustomerCreated(ctx context.Context, customer domain.Customer) error
	PublishCustomerUpdated(ctx context.Context, customer domain.Customer) error
	PublishCustomerDeleted(ctx context.Context, customer domain.Customer) error
}

// Option настраивает сервис
type Option func(*customerService)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *customerService) {
		s.now = now
	}
}

// WithEvents включает публикацию событий
func WithEvents(events EventPublisher) Option {
	return func(s *customerService) {
		s.events = events
	}
}

// WithMetrics включает учет метрик
func WithMetrics(m metrics.CustomerMetrics) Option {
	return func(s *customerService) {
		s.metrics = m
	}
}

type customerService struct {
	repo      repository.CustomerRepository
	validator Validator
	events    EventPublisher
	metrics   metrics.CustomerMetrics
	log       *logger.Logger
	now       func() time.Time
}

// NewCustomerService создает новый сервис для работы с клиентами
func NewCustomerService(repo repository.CustomerRepository, validator Validator, log *logger.Logger, opts ...Option) CustomerService {
	s := &customerService{
		repo:      repo,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *customerService) Save(ctx context.Context, dto domain.RegistrationDto) (domain.ResponseDto, error) {
	s.log.Debug("Creating customer with email: %s", dto.Email)

	// Проверка дубликата выполняется до валидации
	_, err := s.repo.FindByEmail(ctx, dto.Email)
	switch {
	case err == nil:
		return domain.ResponseDto{}, s.reject("save", domain.NewDuplicateError(entityCustomer, "email", dto.Email))
	case !errors.Is(err, repository.ErrNotFound):
		return domain.ResponseDto{}, fmt.Errorf("failed to check customer email: %w", err)
	}

	if errs := s.validator.CheckRegistration(dto); errs.HasErrors() {
		s.log.Warn("Incorrect registration data: %s", dto)
		return domain.ResponseDto{}, s.reject("save", errs)
	}

	saved, err := s.repo.Save(ctx, domain.NewCustomerFromRegistration(dto, s.now()))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.ResponseDto{}, s.reject("save", domain.NewDuplicateError(entityCustomer, "email", dto.Email))
		}
		return domain.ResponseDto{}, fmt.Errorf("failed to save customer: %w", err)
	}

	s.log.Info("Created customer with ID: %d", saved.ID)
	if s.metrics != nil {
		s.metrics.IncCustomerCreated()
	}
	s.publish(ctx, eventCreated, saved)

	return domain.ToResponse(saved), nil
}

func (s *customerService) GetAll(ctx context.Context) ([]domain.ResponseDto, error) {
	s.log.Debug("Getting all customers")

	customers, err := s.repo.FindAllNotDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return domain.ToResponseList(customers), nil
}

func (s *customerService) Get(ctx context.Context, id int64) (domain.ResponseDto, error) {
	s.log.Debug("Getting customer by ID: %d", id)

	customer, err := s.find(ctx, "get", id)
	if err != nil {
		return domain.ResponseDto{}, err
	}

	return domain.ToResponse(customer), nil
}

func (s *customerService) Update(ctx context.Context, dto domain.UpdateDto) (domain.ResponseDto, error) {
	s.log.Debug("Updating customer with ID: %d", dto.ID)

	// Порядок проверок: существование, валидация, удаление
	customer, err := s.find(ctx, "update", dto.ID)
	if err != nil {
		return domain.ResponseDto{}, err
	}

	if errs := s.validator.CheckUpdate(dto); errs.HasErrors() {
		s.log.Warn("Incorrect update data: %s", dto)
		return domain.ResponseDto{}, s.reject("update", errs)
	}

	if customer.Deleted {
		return domain.ResponseDto{}, s.reject("update", domain.NewDeletedError(entityCustomer, dto.ID))
	}

	customer.ApplyUpdate(dto, s.now())

	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ResponseDto{}, s.reject("update", domain.NewNotFoundError(entityCustomer, dto.ID))
		}
		return domain.ResponseDto{}, fmt.Errorf("failed to update customer: %w", err)
	}

	s.log.Info("Updated customer with ID: %d", saved.ID)
	if s.metrics != nil {
		s.metrics.IncCustomerUpdated()
	}
	s.publish(ctx, eventUpdated, saved)

	return domain.ToResponse(saved), nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	s.log.Debug("Deleting customer with ID: %d", id)

	customer, err := s.find(ctx, "delete", id)
	if err != nil {
		return err
	}

	// Повторное удаление разрешено и заново проставляет время изменения
	customer.MarkDeleted(s.now())

	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.reject("delete", domain.NewNotFoundError(entityCustomer, id))
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.log.Info("Deleted customer with ID: %d", id)
	if s.metrics != nil {
		s.metrics.IncCustomerDeleted()
	}
	s.publish(ctx, eventDeleted, saved)

	return nil
}

// find загружает клиента, переводя ErrNotFound репозитория в доменную ошибку
func (s *customerService) find(ctx context.Context, operation string, id int64) (domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Customer{}, s.reject(operation, domain.NewNotFoundError(entityCustomer, id))
		}
		return domain.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) reject(operation string, err error) error {
	s.log.Warn("Customer %s rejected: %v", operation, err)
	if s.metrics != nil {
		s.metrics.IncCustomerRejected(operation, domain.Kind(err))
	}
	return err
}

// publish отправляет событие; ошибка публикации не влияет на результат операции
func (s *customerService) publish(ctx context.Context, eventType string, c domain.Customer) {
	if s.events == nil {
		return
	}

	var err error
	switch eventType {
	case eventCreated:
		err = s.events.PublishCustomerCreated(ctx, c)
	case eventUpdated:
		err = s.events.PublishCustomerUpdated(ctx, c)
	case eventDeleted:
		err = s.events.PublishCustomerDeleted(ctx, c)
	}

	if err != nil {
		s.log.Errorw("Failed to publish customer event", "error", err, "eventType", eventType, "customerID", c.ID)
		if s.metrics != nil {
			s.metrics.IncEventPublishFailed(eventType)
		}
	}
}
