package main

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dhoini/Customer-microservice/internal/db"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateReturnsErrorOnFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dbErr := errors.New("permission denied")
	mock.ExpectExec(".*").WillReturnError(dbErr)

	client := db.NewDBClientFromDB(sqlDB, "pgx", logger.NewNop())

	err = migrate(context.Background(), client, logger.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type stubMigrator struct {
	applied int
}

func (m stubMigrator) Migrate(context.Context) (int, error) {
	return m.applied, nil
}

func TestMigrateSucceeds(t *testing.T) {
	assert.NoError(t, migrate(context.Background(), stubMigrator{applied: 2}, logger.NewNop()))
}
