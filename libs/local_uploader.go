package libs

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// LocalUploader writes images below Dir; they are served under /uploads.
type LocalUploader struct {
	Dir     string
	MaxSize int64
}

func NewLocalUploader(dir string, maxSize int64) *LocalUploader {
	return &LocalUploader{Dir: dir, MaxSize: maxSize}
}

func (u *LocalUploader) Upload(_ context.Context, header *multipart.FileHeader, folder string) (string, error) {
	if err := ValidateImage(header, u.MaxSize); err != nil {
		return "", err
	}

	target := filepath.Join(u.Dir, folder)
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(target, filename))
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return path.Join("/uploads", folder, filename), nil
}
