package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	handlers "github.com/Dhoini/Customer-microservice/internal/api/grpc/handler"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/internal/validator"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	customerpb "github.com/Dhoini/Customer-microservice/proto/customer/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T) (*Server, healthpb.HealthClient) {
	t.Helper()

	srv, conn := startServerConn(t)
	return srv, healthpb.NewHealthClient(conn)
}

func startServerConn(t *testing.T) (*Server, *grpc.ClientConn) {
	t.Helper()

	log := logger.NewNop()
	customers := service.NewCustomerService(repository.NewInMemoryCustomerRepository(log), validator.New(), log)

	lis := bufconn.Listen(1024 * 1024)
	srv := NewServer(log)
	srv.RegisterServices(handlers.NewCustomerHandler(customers, log))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
		<-done
	})

	return srv, conn
}

func TestHealthServing(t *testing.T) {
	_, client := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range []string{"", CustomerServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestHealthNotServing(t *testing.T) {
	srv, client := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Дожидаемся старта Serve, который выставляет SERVING
	require.Eventually(t, func() bool {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: CustomerServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	srv.SetServing(false)

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: CustomerServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHealthUnknownService(t *testing.T) {
	_, client := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown.Service"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(logger.NewNop())

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Panic"},
		func(context.Context, interface{}) (interface{}, error) {
			panic("boom")
		})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	interceptor := LoggingInterceptor(logger.NewNop())
	handlerErr := errors.New("failed")

	resp, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/test/Echo"},
		func(_ context.Context, req interface{}) (interface{}, error) {
			return req, handlerErr
		})
	assert.Equal(t, "req", resp)
	assert.ErrorIs(t, err, handlerErr)
}

func TestCustomerServiceLifecycle(t *testing.T) {
	_, conn := startServerConn(t)
	client := customerpb.NewCustomerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.CreateCustomer(ctx, &customerpb.CreateCustomerRequest{
		FullName: "Ivan Ivanov",
		Email:    "ivan@mail.ru",
		Phone:    "+79991234567",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GetId())
	assert.Equal(t, "Ivan Ivanov", created.GetFullName())

	got, err := client.GetCustomer(ctx, &customerpb.GetCustomerRequest{Id: created.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "ivan@mail.ru", got.GetEmail())

	// Без phone телефон остается прежним
	updated, err := client.UpdateCustomer(ctx, &customerpb.UpdateCustomerRequest{Id: created.GetId(), FullName: "Petr Petrov"})
	require.NoError(t, err)
	assert.Equal(t, "Petr Petrov", updated.GetFullName())
	assert.Equal(t, "+79991234567", updated.GetPhone())

	phone := "+70001112233"
	updated, err = client.UpdateCustomer(ctx, &customerpb.UpdateCustomerRequest{Id: created.GetId(), FullName: "Petr Petrov", Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.GetPhone())

	list, err := client.ListCustomers(ctx, &customerpb.ListCustomersRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), list.GetTotal())
	require.Len(t, list.GetCustomers(), 1)
	assert.Equal(t, created.GetId(), list.GetCustomers()[0].GetId())

	deleted, err := client.DeleteCustomer(ctx, &customerpb.DeleteCustomerRequest{Id: created.GetId()})
	require.NoError(t, err)
	assert.True(t, deleted.GetSuccess())

	list, err = client.ListCustomers(ctx, &customerpb.ListCustomersRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.GetTotal())
	assert.Empty(t, list.GetCustomers())
}

func TestCustomerServiceErrorCodes(t *testing.T) {
	_, conn := startServerConn(t)
	client := customerpb.NewCustomerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ivan := &customerpb.CreateCustomerRequest{FullName: "Ivan Ivanov", Email: "ivan@mail.ru", Phone: "+79991234567"}
	_, err := client.CreateCustomer(ctx, ivan)
	require.NoError(t, err)

	petr, err := client.CreateCustomer(ctx, &customerpb.CreateCustomerRequest{FullName: "Petr Petrov", Email: "petr@mail.ru", Phone: "+79990000000"})
	require.NoError(t, err)
	_, err = client.DeleteCustomer(ctx, &customerpb.DeleteCustomerRequest{Id: petr.GetId()})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		code codes.Code
	}{
		{
			name: "duplicate email",
			call: func() error {
				_, err := client.CreateCustomer(ctx, ivan)
				return err
			},
			code: codes.AlreadyExists,
		},
		{
			name: "invalid registration",
			call: func() error {
				_, err := client.CreateCustomer(ctx, &customerpb.CreateCustomerRequest{FullName: "x", Email: "bad", Phone: "1"})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown id",
			call: func() error {
				_, err := client.GetCustomer(ctx, &customerpb.GetCustomerRequest{Id: 99})
				return err
			},
			code: codes.NotFound,
		},
		{
			name: "update deleted customer",
			call: func() error {
				_, err := client.UpdateCustomer(ctx, &customerpb.UpdateCustomerRequest{Id: petr.GetId(), FullName: "Petr Sidorov"})
				return err
			},
			code: codes.FailedPrecondition,
		},
		{
			name: "invalid update on deleted customer",
			call: func() error {
				_, err := client.UpdateCustomer(ctx, &customerpb.UpdateCustomerRequest{Id: petr.GetId(), FullName: "x"})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "delete unknown id",
			call: func() error {
				_, err := client.DeleteCustomer(ctx, &customerpb.DeleteCustomerRequest{Id: 99})
				return err
			},
			code: codes.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(tt.call()))
		})
	}
}
