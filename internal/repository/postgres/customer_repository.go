package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	customerColumns = `id, full_name, email, phone, created_at, updated_at, deleted`

	selectByIDQuery = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1
	`

	selectByEmailQuery = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE email = $1 AND deleted = FALSE
	`

	selectNotDeletedQuery = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE deleted = FALSE
		ORDER BY id
	`

	insertQuery = `
		INSERT INTO customers (full_name, email, phone, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + customerColumns

	// email и created_at после создания не меняются
	updateQuery = `
		UPDATE customers
		SET full_name = $1, phone = $2, updated_at = $3, deleted = $4
		WHERE id = $5
		RETURNING ` + customerColumns

	uniqueViolationCode = "23505"
)

// DB подмножество pgxpool.Pool, которое использует репозиторий
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CustomerRepository реализация репозитория клиентов через PostgreSQL
type CustomerRepository struct {
	db  DB
	log *logger.Logger
}

// NewCustomerRepository создает новый репозиторий клиентов через PostgreSQL
func NewCustomerRepository(db DB, log *logger.Logger) *CustomerRepository {
	return &CustomerRepository{
		db:  db,
		log: log,
	}
}

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&customer.Phone,
		&customer.Created,
		&customer.Updated,
		&customer.Deleted,
	)
	return customer, err
}

// FindByEmail возвращает активного клиента по email
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(ctx, selectByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, repository.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return customer, nil
}

// FindByID возвращает клиента по ID
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (domain.Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(ctx, selectByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, repository.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// FindAllNotDeleted возвращает всех активных клиентов
func (r *CustomerRepository) FindAllNotDeleted(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, selectNotDeletedQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// Save создает клиента при нулевом ID, иначе обновляет существующего
func (r *CustomerRepository) Save(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	if customer.ID == 0 {
		return r.insert(ctx, customer)
	}
	return r.update(ctx, customer)
}

func (r *CustomerRepository) insert(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	saved, err := scanCustomer(r.db.QueryRow(
		ctx,
		insertQuery,
		customer.FullName,
		customer.Email,
		customer.Phone,
		customer.Created,
		customer.Updated,
		customer.Deleted,
	))
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warn("Unique violation on customer email %s", customer.Email)
			return domain.Customer{}, repository.ErrDuplicate
		}
		return domain.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	r.log.Debug("Customer %d inserted", saved.ID)
	return saved, nil
}

func (r *CustomerRepository) update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	saved, err := scanCustomer(r.db.QueryRow(
		ctx,
		updateQuery,
		customer.FullName,
		customer.Phone,
		customer.Updated,
		customer.Deleted,
		customer.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, repository.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}

	r.log.Debug("Customer %d updated", saved.ID)
	return saved, nil
}

// isUniqueViolation проверяет код ошибки на нарушение уникальности
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
