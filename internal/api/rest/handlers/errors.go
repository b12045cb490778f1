package handlers

import (
	"errors"
	"net/http"

	"github.com/Dhoini/Customer-microservice/internal/api/rest/middleware"
	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/Dhoini/Customer-microservice/pkg/res"
	"github.com/gin-gonic/gin"
)

const msgInternal = "internal server error"

// statusFor возвращает HTTP статус для ошибки сервиса
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDeleted):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// writeError отвечает клиенту по таблице статусов. Детали внутренних ошибок наружу не отдаются.
func writeError(c *gin.Context, log *logger.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Errorw("Request failed", "error", err, "path", c.FullPath(), "requestID", c.GetString(middleware.RequestIDKey))
		res.JsonErrorResponse(c, res.ErrorResponse{Error: msgInternal}, status)
		return
	}

	body := res.ErrorResponse{Error: err.Error()}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		body.Details = verrs
	}
	res.JsonErrorResponse(c, body, status)
}
