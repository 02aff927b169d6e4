package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/middleware"
	"piramida/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, limiter)
	SetupPropertyRouter(e)
	SetupSubmissionRouter(e, limiter)
	SetupInquiryRouter(e, authMiddleware, adminMiddleware, limiter)
	SetupWorkflowRouter(e, authMiddleware, adminMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupFileRouter(e)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
