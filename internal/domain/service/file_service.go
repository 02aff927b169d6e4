package service

import (
	"context"
	"io"
)

// FileUploadService stores an uploaded image and returns its hosted URL.
type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType string) (string, error)
	Close() error
}
