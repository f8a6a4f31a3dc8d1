package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"StockSignal/pkg/logger"
)

// Recover converts a handler panic into an error so the server's error
// handler can render the generic 500 envelope. The stack is logged here,
// at the only place it is still available.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					rerr, ok := r.(error)
					if !ok {
						rerr = fmt.Errorf("%v", r)
					}
					log.Error("panic recovered",
						logger.Error(rerr),
						logger.String("stack", string(debug.Stack())),
					)
					err = rerr
				}
			}()
			return next(c)
		}
	}
}
