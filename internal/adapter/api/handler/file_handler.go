package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"piramida/internal/domain/service"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
	"piramida/pkg/response"
)

type FileHandler struct {
	fileService service.FileUploadService
	maxFileSize int64
}

var fileHandler *FileHandler

func NewFileHandler(fileService service.FileUploadService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func SetupFileHandler(fileService service.FileUploadService) {
	fileHandler = NewFileHandler(fileService)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}

// UploadPropertyImage stores one photo from the listing form and returns its
// public URL. The form references the URL in the submission payload.
func (h *FileHandler) UploadPropertyImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.fileService.UploadFile(c.Request().Context(), src, fileType)
	if err != nil {
		logger.Error("Property image upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	return response.Success(c, map[string]interface{}{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}
