package grpc

import (
	"fmt"
	"net"
	"time"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	customerpb "github.com/Dhoini/Customer-microservice/proto/customer/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// CustomerServiceName имя сервиса в протоколе grpc.health.v1
const CustomerServiceName = "customer.v1.CustomerService"

// Server gRPC сервер клиентов со служебными сервисами health и reflection
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	log        *logger.Logger
}

// NewServer создает новый gRPC сервер
func NewServer(log *logger.Logger) *Server {
	// Настройки keepalive для gRPC
	kaParams := keepalive.ServerParameters{
		MaxConnectionIdle:     time.Minute * 5,  // Максимальное время простоя соединения
		MaxConnectionAge:      time.Hour,        // Максимальное время жизни соединения
		MaxConnectionAgeGrace: time.Minute * 5,  // Дополнительное время для завершения запросов при закрытии соединения
		Time:                  time.Minute * 2,  // Время между пингами для проверки активности
		Timeout:               time.Second * 20, // Таймаут после которого соединение закрывается если нет ответа на пинг
	}

	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(kaParams),
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(log),
			LoggingInterceptor(log),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		log:        log,
	}
}

// RegisterServices регистрирует сервис клиентов и reflection
func (s *Server) RegisterServices(customerService customerpb.CustomerServiceServer) {
	customerpb.RegisterCustomerServiceServer(s.grpcServer, customerService)

	// Включаем reflection для удобства отладки (например, с помощью grpcurl)
	reflection.Register(s.grpcServer)
}

// SetServing переключает статус сервиса клиентов и общий статус сервера
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(CustomerServiceName, status)
}

// Start слушает порт и запускает gRPC сервер
func (s *Server) Start(port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(listener)
}

// Serve запускает gRPC сервер на готовом listener
func (s *Server) Serve(listener net.Listener) error {
	s.log.Info("Starting gRPC server on %s", listener.Addr())
	s.SetServing(true)

	if err := s.grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop переводит health в NOT_SERVING и останавливает gRPC сервер
func (s *Server) Stop() {
	s.log.Info("Stopping gRPC server")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
