package middleware

import (
	"net/http"

	"YenDong/pkg/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimit rejects requests with 429 once the caller's bucket is empty. Callers are keyed by real IP.
func RateLimit(l *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l == nil || l.Allow(c.RealIP()) {
				return next(c)
			}
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusTooManyRequests, map[string]string{
				"message": "Too many requests",
			})
		}
	}
}
