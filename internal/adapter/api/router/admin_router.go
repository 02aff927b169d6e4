package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
	"piramida/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	// Moderation queue
	admin.GET("/submissions", adminHandler.ListSubmissions)
	admin.POST("/submissions/:id/approve", adminHandler.ApproveSubmission)
	admin.POST("/submissions/:id/reject", adminHandler.RejectSubmission)

	// Listing management
	admin.GET("/listings", adminHandler.ListListings)
	admin.POST("/listings", adminHandler.CreateListing)
	admin.PUT("/listings/:id", adminHandler.UpdateListing)
	admin.POST("/listings/:id/duplicate", adminHandler.DuplicateListing)
	admin.DELETE("/listings/:id", adminHandler.DeleteListing)

	// Account and pricing management stays behind the super-admin role.
	admin.GET("/admins", adminHandler.ListAdmins)
	admin.POST("/admins", adminHandler.AddAdmin, adminMiddleware.SuperAdminOnly)
	admin.DELETE("/admins/:id", adminHandler.DeleteAdmin, adminMiddleware.SuperAdminOnly)
	admin.GET("/pricing", adminHandler.GetPricing)
	admin.PUT("/pricing", adminHandler.UpdatePricing)
}
