package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
	"piramida/internal/adapter/api/middleware"
	"piramida/internal/infrastructure/ratelimit"
)

func SetupSubmissionRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	submissionHandler := handler.GetSubmissionHandler()

	submissions := e.Group("/v1/submissions")
	submissions.POST("", submissionHandler.SubmitProperty, middleware.RateLimit(limiter, "submit_property"))
}
