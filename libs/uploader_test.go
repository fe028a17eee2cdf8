package libs

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int
		maxSize int64
		wantErr bool
	}{
		{"png", "a.png", 10, 100, false},
		{"upper-case extension", "a.JPEG", 10, 100, false},
		{"webp without limit", "a.webp", 1000, 0, false},
		{"unsupported extension", "a.svg", 10, 100, true},
		{"no extension", "image", 10, 100, true},
		{"too large", "a.gif", 101, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(fileHeader(t, tt.file, bytes.Repeat([]byte("x"), tt.size)), tt.maxSize)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocalUploader(t *testing.T) {
	dir := t.TempDir()
	u := NewLocalUploader(dir, 1024)

	url, err := u.Upload(context.Background(), fileHeader(t, "photo.JPG", []byte("jpeg data")), "products")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/products/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	data, err := os.ReadFile(filepath.Join(dir, "products", filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg data", string(data))

	_, err = u.Upload(context.Background(), fileHeader(t, "notes.txt", []byte("text")), "products")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestNewImageUploader(t *testing.T) {
	local := NewImageUploader(&config.Config{UploadDir: t.TempDir(), MaxUploadSize: 10})
	assert.IsType(t, &LocalUploader{}, local)

	cld := NewImageUploader(&config.Config{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
	})
	assert.IsType(t, &CloudinaryUploader{}, cld)
}

func TestNewCloudinaryUploaderRequiresCredentials(t *testing.T) {
	_, err := NewCloudinaryUploader(&config.Config{CloudinaryCloudName: "demo"})
	assert.Error(t, err)
}
