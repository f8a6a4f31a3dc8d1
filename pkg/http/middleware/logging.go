package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"StockSignal/pkg/logger"
)

// RequestLogging logs one structured line per HTTP request.
func RequestLogging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			err := next(c)

			log.Info("http request",
				logger.String("method", req.Method),
				logger.String("uri", req.RequestURI),
				logger.String("remote", req.RemoteAddr),
				logger.Int("status", c.Response().Status),
				logger.Duration("took", time.Since(start)),
			)

			return err
		}
	}
}
