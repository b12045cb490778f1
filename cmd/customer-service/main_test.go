package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/config"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(grpcPort string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "customer-service", Env: "test"},
		Server: config.ServerConfig{
			Port:            "0",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		GRPC: config.GRPCConfig{Port: grpcPort},
		Log:  config.LogConfig{Level: "debug"},
	}
}

func TestServeReturnsErrorWhenServerFails(t *testing.T) {
	// Порт уже занят, gRPC сервер не сможет стартовать
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = serve(ctx, testConfig(port), logger.NewNop())
	assert.Error(t, err)
}

func TestServeStopsCleanlyOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, testConfig("0"), logger.NewNop())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
