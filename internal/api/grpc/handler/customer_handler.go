package handlers

import (
	"context"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	customerpb "github.com/Dhoini/Customer-microservice/proto/customer/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const msgInternal = "internal server error"

// CustomerHandler обработчик для gRPC сервиса клиентов
type CustomerHandler struct {
	customerpb.UnimplementedCustomerServiceServer
	service service.CustomerService
	log     *logger.Logger
}

// NewCustomerHandler создает новый обработчик клиентов
func NewCustomerHandler(service service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// CreateCustomer регистрирует нового клиента
func (h *CustomerHandler) CreateCustomer(ctx context.Context, req *customerpb.CreateCustomerRequest) (*customerpb.CustomerResponse, error) {
	h.log.Debug("gRPC CreateCustomer request received for email: %s", req.GetEmail())

	customer, err := h.service.Save(ctx, domain.RegistrationDto{
		FullName: req.GetFullName(),
		Email:    req.GetEmail(),
		Phone:    req.GetPhone(),
	})
	if err != nil {
		return nil, h.toStatus("CreateCustomer", err)
	}

	return toCustomerResponse(customer), nil
}

// GetCustomer возвращает активного клиента по ID
func (h *CustomerHandler) GetCustomer(ctx context.Context, req *customerpb.GetCustomerRequest) (*customerpb.CustomerResponse, error) {
	h.log.Debug("gRPC GetCustomer request received for ID: %d", req.GetId())

	customer, err := h.service.Get(ctx, req.GetId())
	if err != nil {
		return nil, h.toStatus("GetCustomer", err)
	}

	return toCustomerResponse(customer), nil
}

// ListCustomers возвращает всех активных клиентов
func (h *CustomerHandler) ListCustomers(ctx context.Context, _ *customerpb.ListCustomersRequest) (*customerpb.ListCustomersResponse, error) {
	h.log.Debug("gRPC ListCustomers request received")

	customers, err := h.service.GetAll(ctx)
	if err != nil {
		return nil, h.toStatus("ListCustomers", err)
	}

	resp := &customerpb.ListCustomersResponse{
		Customers: make([]*customerpb.CustomerResponse, 0, len(customers)),
		Total:     int32(len(customers)),
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, toCustomerResponse(c))
	}

	return resp, nil
}

// UpdateCustomer обновляет имя и, если передан, телефон клиента
func (h *CustomerHandler) UpdateCustomer(ctx context.Context, req *customerpb.UpdateCustomerRequest) (*customerpb.CustomerResponse, error) {
	h.log.Debug("gRPC UpdateCustomer request received for ID: %d", req.GetId())

	customer, err := h.service.Update(ctx, domain.UpdateDto{
		ID:       req.GetId(),
		FullName: req.GetFullName(),
		Phone:    req.Phone,
	})
	if err != nil {
		return nil, h.toStatus("UpdateCustomer", err)
	}

	return toCustomerResponse(customer), nil
}

// DeleteCustomer помечает клиента удаленным
func (h *CustomerHandler) DeleteCustomer(ctx context.Context, req *customerpb.DeleteCustomerRequest) (*customerpb.DeleteCustomerResponse, error) {
	h.log.Debug("gRPC DeleteCustomer request received for ID: %d", req.GetId())

	if err := h.service.Delete(ctx, req.GetId()); err != nil {
		return nil, h.toStatus("DeleteCustomer", err)
	}

	return &customerpb.DeleteCustomerResponse{Success: true}, nil
}

// codeFor возвращает gRPC код для ошибки сервиса
func codeFor(err error) codes.Code {
	switch domain.Kind(err) {
	case "validation":
		return codes.InvalidArgument
	case "duplicate":
		return codes.AlreadyExists
	case "not_found":
		return codes.NotFound
	case "deleted":
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// toStatus переводит ошибку сервиса в gRPC статус. Детали внутренних ошибок наружу не отдаются.
func (h *CustomerHandler) toStatus(method string, err error) error {
	code := codeFor(err)
	if code == codes.Internal {
		h.log.Errorw("gRPC request failed", "method", method, "error", err)
		return status.Error(code, msgInternal)
	}
	return status.Error(code, err.Error())
}

func toCustomerResponse(c domain.ResponseDto) *customerpb.CustomerResponse {
	return &customerpb.CustomerResponse{
		Id:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}
