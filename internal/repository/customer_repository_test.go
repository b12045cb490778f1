package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(name, email string) domain.Customer {
	return domain.Customer{
		FullName: name,
		Email:    email,
		Phone:    "+380976544547",
		Created:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInMemorySaveAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryCustomerRepository(logger.NewNop())

	first, err := repo.Save(ctx, newCustomer("Ivan Ivanov", "ivanov@gmail.com"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, newCustomer("John Alison", "alison@gmail.com"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	found, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, second, found)
}

func TestInMemoryFindByIDMissing(t *testing.T) {
	repo := NewInMemoryCustomerRepository(logger.NewNop())

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryFindByEmailIgnoresDeleted(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryCustomerRepository(logger.NewNop())

	saved, err := repo.Save(ctx, newCustomer("Ivan Ivanov", "ivanov@gmail.com"))
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "ivanov@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	saved.MarkDeleted(time.Now())
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	_, err = repo.FindByEmail(ctx, "ivanov@gmail.com")
	assert.ErrorIs(t, err, ErrNotFound)

	// email освобожден после мягкого удаления
	again, err := repo.Save(ctx, newCustomer("Ivan Ivanov", "ivanov@gmail.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID)
}

func TestInMemorySaveRejectsActiveDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryCustomerRepository(logger.NewNop())

	_, err := repo.Save(ctx, newCustomer("Ivan Ivanov", "ivanov@gmail.com"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newCustomer("Other Person", "ivanov@gmail.com"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestInMemorySaveUnknownID(t *testing.T) {
	repo := NewInMemoryCustomerRepository(logger.NewNop())

	c := newCustomer("Ivan Ivanov", "ivanov@gmail.com")
	c.ID = 42
	_, err := repo.Save(context.Background(), c)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryFindAllNotDeletedOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryCustomerRepository(logger.NewNop())

	emails := []string{"a@x.io", "b@x.io", "c@x.io", "d@x.io"}
	var saved []domain.Customer
	for _, email := range emails {
		c, err := repo.Save(ctx, newCustomer("Some Name", email))
		require.NoError(t, err)
		saved = append(saved, c)
	}

	saved[1].MarkDeleted(time.Now())
	_, err := repo.Save(ctx, saved[1])
	require.NoError(t, err)

	all, err := repo.FindAllNotDeleted(ctx)
	require.NoError(t, err)

	ids := make([]int64, 0, len(all))
	for _, c := range all {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
}
