package handlers

import (
	"errors"
	"net/http"

	"github.com/alligatorO15/expense-analytics/internal/analytics"
	"github.com/alligatorO15/expense-analytics/internal/currency"
	"github.com/alligatorO15/expense-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError переводит ошибку сервиса в статус и {"error": ...}
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrCategoryExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNonPositiveAmount),
		errors.Is(err, analytics.ErrIndexOutOfRange),
		errors.Is(err, analytics.ErrRowOutOfRange),
		errors.Is(err, analytics.ErrEmptyWindow),
		errors.Is(err, analytics.ErrInvalidInterval):
		status = http.StatusBadRequest
	case errors.Is(err, currency.ErrRateUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		// детали внутренних ошибок только в лог
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
