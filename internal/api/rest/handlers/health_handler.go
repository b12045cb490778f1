package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck возвращает обработчик для проверки работоспособности сервиса
func HealthCheck(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": serviceName,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
