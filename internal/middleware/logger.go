package middleware

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = logger.ErrorLevel
		case status >= http.StatusBadRequest:
			level = logger.WarnLevel
		}

		userID, _ := UserID(c)
		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString(RequestIDKey)),
			logger.Any("user_id", userID),
			logger.String("reason", c.GetString("reason")),
			logger.String("error", c.GetString("error")),
		)
	}
}
