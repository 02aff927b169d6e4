package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
)

func SetupFileRouter(e *echo.Echo) {
	fileHandler := handler.GetFileHandler()

	e.POST("/v1/files/property-image", fileHandler.UploadPropertyImage)
}
