package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
	"piramida/internal/adapter/api/middleware"
)

func SetupWorkflowRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	workflowHandler := handler.GetWorkflowHandler()

	// Owners reach their own checkout ladder through the public surface; the
	// identifier from the submission receipt is the access key.
	workflows := e.Group("/v1/workflows")
	workflows.GET("/:id", workflowHandler.GetWorkflow)
	workflows.POST("/:id/plan", workflowHandler.SelectPlan)
	workflows.POST("/:id/payment", workflowHandler.CompletePayment)

	admin := e.Group("/v1/admin/workflows")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", workflowHandler.ListWorkflows)
}
