package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// DBClient представляет клиент для служебных операций с базой данных (миграции).
type DBClient struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewDBClient создает новый экземпляр DBClient.
func NewDBClient(ctx context.Context, dsn string, log *logger.Logger) (*DBClient, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Errorw("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DBClient{db: db, log: log}, nil
}

// NewDBClientFromDB оборачивает готовое подключение database/sql.
func NewDBClientFromDB(db *sql.DB, driverName string, log *logger.Logger) *DBClient {
	return &DBClient{db: sqlx.NewDb(db, driverName), log: log}
}

// Close закрывает соединение с базой данных.
func (dc *DBClient) Close() error {
	err := dc.db.Close()
	if err != nil {
		dc.log.Errorw("Failed to close database connection", "error", err)
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// Migrate применяет недостающие миграции и возвращает их количество.
// Каждая миграция выполняется в отдельной транзакции.
func (dc *DBClient) Migrate(ctx context.Context) (int, error) {
	if _, err := dc.db.ExecContext(ctx, createMigrationsTableQuery); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var versions []int
	if err := dc.db.SelectContext(ctx, &versions, selectAppliedVersionsQuery); err != nil {
		return 0, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	applied := make(map[int]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	count := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := dc.apply(ctx, m); err != nil {
			return count, err
		}
		dc.log.Infow("Migration applied", "version", m.Version, "name", m.Name)
		count++
	}

	return count, nil
}

func (dc *DBClient) apply(ctx context.Context, m migration) error {
	tx, err := dc.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		dc.rollback(tx)
		return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
	}

	if _, err := tx.ExecContext(ctx, insertMigrationQuery, m.Version, m.Name); err != nil {
		dc.rollback(tx)
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

func (dc *DBClient) rollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil {
		dc.log.Errorw("Failed to rollback transaction", "error", err)
	}
}
