package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
	"piramida/internal/adapter/api/middleware"
	"piramida/internal/infrastructure/ratelimit"
)

func SetupInquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	inquiryHandler := handler.GetInquiryHandler()

	e.POST("/v1/properties/:id/inquiries", inquiryHandler.CreateInquiry, middleware.RateLimit(limiter, "send_inquiry"))

	admin := e.Group("/v1/admin/inquiries")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", inquiryHandler.ListInquiries)
}
