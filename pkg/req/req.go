package req

import (
	"net/http"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/Dhoini/Customer-microservice/pkg/res"
	"github.com/gin-gonic/gin"
)

const msgMalformedBody = "malformed request body"

// HandleBody декодирует тело запроса в структуру типа T.
// При ошибке отвечает 400 и возвращает false.
func HandleBody[T any](c *gin.Context, log *logger.Logger) (T, bool) {
	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warnw("Failed to decode request body", "error", err, "path", c.FullPath())
		res.JsonErrorResponse(c, res.ErrorResponse{Error: msgMalformedBody}, http.StatusBadRequest)
		return payload, false
	}
	return payload, true
}
