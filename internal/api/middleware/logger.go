package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger пишет метод, путь, статус и время ответа каждого запроса
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		userID := GetUserID(c)
		logger.Printf("%s %s %d %s user=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond), userID)
		for _, err := range c.Errors {
			logger.Printf("  ошибка: %v", err.Err)
		}
	}
}
