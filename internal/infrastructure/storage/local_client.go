package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStorageClient writes uploads to a directory on disk. It backs the
// server in development, where no bucket is configured; the directory is
// served as static files.
type LocalStorageClient struct {
	baseDir string
}

func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &LocalStorageClient{baseDir: baseDir}, nil
}

func (c *LocalStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType string) (string, error) {
	filename := fmt.Sprintf("%s-%s", uuid.New().String(), time.Now().Format("20060102150405"))

	switch fileType {
	case "image/jpeg", "image/jpg":
		filename += ".jpg"
	case "image/png":
		filename += ".png"
	case "image/gif":
		filename += ".gif"
	case "image/webp":
		filename += ".webp"
	default:
		filename += ".bin"
	}

	dst, err := os.Create(filepath.Join(c.baseDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write file: %v", err)
	}

	return fmt.Sprintf("/uploads/%s", filename), nil
}

func (c *LocalStorageClient) Close() error {
	return nil
}
