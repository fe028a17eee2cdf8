package libs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"storefront/config"
)

var ErrInvalidImage = errors.New("invalid image")

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageUploader stores a product image and returns the URL it is served from.
type ImageUploader interface {
	Upload(ctx context.Context, header *multipart.FileHeader, folder string) (string, error)
}

// NewImageUploader returns a Cloudinary uploader when credentials are
// configured and a local disk uploader otherwise.
func NewImageUploader(cfg *config.Config) ImageUploader {
	if cfg.CloudinaryURL != "" || (cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "") {
		cld, err := NewCloudinaryUploader(cfg)
		if err == nil {
			log.Println("Image uploads go to Cloudinary")
			return cld
		}
		log.Printf("Cloudinary unavailable, storing images locally: %v", err)
	}

	log.Printf("Image uploads stored in %s", cfg.UploadDir)
	return NewLocalUploader(cfg.UploadDir, cfg.MaxUploadSize)
}

func ValidateImage(header *multipart.FileHeader, maxSize int64) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return fmt.Errorf("%w: only jpg, jpeg, png, gif, webp allowed", ErrInvalidImage)
	}

	if maxSize > 0 && header.Size > maxSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidImage, maxSize)
	}

	return nil
}
