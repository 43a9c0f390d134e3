package middleware

import (
	"time"

	"YenDong/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one debug line per request, or a warning for 4xx/5xx.
func RequestLogging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("uri", req.RequestURI),
				logger.String("remote_ip", c.RealIP()),
				logger.Int("status", res.Status),
				logger.Duration("latency_ms", time.Since(start)),
			}
			if res.Status >= 400 {
				log.Warn("http request", fields...)
			} else {
				log.Debug("http request", fields...)
			}

			return nil
		}
	}
}
