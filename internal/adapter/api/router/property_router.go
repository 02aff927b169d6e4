package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
)

func SetupPropertyRouter(e *echo.Echo) {
	propertyHandler := handler.GetPropertyHandler()
	adminHandler := handler.GetAdminHandler()

	properties := e.Group("/v1/properties")
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)

	// Plan prices are public; owners see them before checkout.
	e.GET("/v1/pricing", adminHandler.GetPricing)
}
