package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCacheFromClient(client, time.Minute, logger.NewNop()), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t)

	updated := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	customer := domain.Customer{
		ID:       5,
		FullName: "Ivan Ivanov",
		Email:    "ivanov@gmail.com",
		Phone:    "+380976544547",
		Created:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Updated:  &updated,
		Deleted:  true,
	}

	require.NoError(t, cache.SetCustomer(ctx, customer))
	assert.True(t, mr.Exists("customer:5"))

	got, err := cache.GetCustomer(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, customer.ID, got.ID)
	assert.Equal(t, customer.FullName, got.FullName)
	assert.True(t, customer.Created.Equal(got.Created))
	require.NotNil(t, got.Updated)
	assert.True(t, updated.Equal(*got.Updated))
	assert.True(t, got.Deleted)

	require.NoError(t, cache.DeleteCustomer(ctx, 5))
	got, err = cache.GetCustomer(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheExpires(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t)

	require.NoError(t, cache.SetCustomer(ctx, domain.Customer{ID: 1, Email: "a@b.c"}))
	mr.FastForward(2 * time.Minute)

	got, err := cache.GetCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

type fakeCache struct {
	items  map[int64]domain.Customer
	getErr error
	gets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[int64]domain.Customer)}
}

func (f *fakeCache) GetCustomer(_ context.Context, id int64) (*domain.Customer, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCache) SetCustomer(_ context.Context, customer domain.Customer) error {
	f.items[customer.ID] = customer
	return nil
}

func (f *fakeCache) DeleteCustomer(_ context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

func TestCachedRepositoryReadThrough(t *testing.T) {
	ctx := context.Background()
	base := NewInMemoryCustomerRepository(logger.NewNop())
	cache := newFakeCache()
	repo := NewCachedCustomerRepository(base, cache, logger.NewNop())

	saved, err := base.Save(ctx, newCustomer("Ivan Ivanov", "ivanov@gmail.com"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Contains(t, cache.items, saved.ID)

	// Запись из кеша имеет приоритет над хранилищем
	stale := saved
	stale.FullName = "From Cache"
	cache.items[saved.ID] = stale

	got, err = repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "From Cache", got.FullName)
}

func TestCachedRepositorySaveRefreshesCache(t *testing.T) {
	ctx := context.Background()
	base := NewInMemoryCustomerRepository(logger.NewNop())
	cache := newFakeCache()
	repo := NewCachedCustomerRepository(base, cache, logger.NewNop())

	saved, err := repo.Save(ctx, newCustomer("Ivan Ivanov", "ivanov@gmail.com"))
	require.NoError(t, err)
	assert.Equal(t, saved, cache.items[saved.ID])

	saved.MarkDeleted(time.Now())
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.True(t, cache.items[saved.ID].Deleted)
}

func TestCachedRepositoryFallsBackOnCacheError(t *testing.T) {
	ctx := context.Background()
	base := NewInMemoryCustomerRepository(logger.NewNop())
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	repo := NewCachedCustomerRepository(base, cache, logger.NewNop())

	saved, err := base.Save(ctx, newCustomer("Ivan Ivanov", "ivanov@gmail.com"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = repo.FindByID(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, cache.gets)
}
