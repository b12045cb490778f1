package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/Dhoini/Customer-microservice/pkg/req"
	"github.com/Dhoini/Customer-microservice/pkg/res"
	"github.com/gin-gonic/gin"
)

const msgInvalidID = "invalid customer id"

// CustomerHandler обработчик для клиентов
type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

// NewCustomerHandler создает новый обработчик клиентов
func NewCustomerHandler(svc service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		log:     log,
	}
}

// CreateCustomer регистрирует нового клиента
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	dto, ok := req.HandleBody[domain.RegistrationDto](c, h.log)
	if !ok {
		return
	}

	customer, err := h.service.Save(c.Request.Context(), dto)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	res.JsonResponse(c, customer, http.StatusOK)
}

// GetCustomers возвращает список всех активных клиентов
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.log.Debug("Returned %d customers", len(customers))
	res.JsonResponse(c, customers, http.StatusOK)
}

// GetCustomer возвращает клиента по ID
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	res.JsonResponse(c, customer, http.StatusOK)
}

// UpdateCustomer обновляет клиента. ID из пути имеет приоритет над ID в теле.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	dto, ok := req.HandleBody[domain.UpdateDto](c, h.log)
	if !ok {
		return
	}

	if c.Param("id") != "" {
		id, ok := h.pathID(c)
		if !ok {
			return
		}
		dto.ID = id
	}

	customer, err := h.service.Update(c.Request.Context(), dto)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	res.JsonResponse(c, customer, http.StatusOK)
}

// DeleteCustomer помечает клиента удаленным
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *CustomerHandler) pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("Invalid customer ID: %s", raw)
		res.JsonErrorResponse(c, res.ErrorResponse{Error: msgInvalidID}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
