package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
	"piramida/internal/adapter/api/middleware"
	"piramida/internal/infrastructure/ratelimit"
)

func SetupAuthRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin, middleware.RateLimit(limiter, "admin_login"))
}
