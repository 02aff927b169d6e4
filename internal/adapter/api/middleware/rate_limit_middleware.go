package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"piramida/internal/infrastructure/ratelimit"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
	"piramida/pkg/response"
)

// RateLimit applies the token-bucket limiter to a route, keyed by the
// caller's IP and the given action.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, wait := limiter.Allow(c.RealIP(), action)
			if !allowed {
				logger.Warn("Rate limit exceeded for %s on %s", c.RealIP(), action)
				message := fmt.Sprintf("Too many requests, try again in %d seconds", int(wait/time.Second)+1)
				return response.Error(c, errors.TooManyRequests(message, wait))
			}
			return next(c)
		}
	}
}
