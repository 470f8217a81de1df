package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"realty_backend/internal/config"
	"realty_backend/internal/services"
	"realty_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader собирает multipart-форму с одним файлом и возвращает его заголовок
func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadListingImage_FitsIntoConfiguredDimension(t *testing.T) {
	store, err := storage.NewLocalStorage(config.StorageConfig{BasePath: t.TempDir(), BaseURL: "/files"})
	require.NoError(t, err)

	cfg := config.DefaultUploadConfig()
	cfg.MaxDimension = 20
	svc := services.NewUploadService(store, cfg)

	res, err := svc.UploadListingImage(context.Background(), 7, fileHeader(t, "wide.png", pngImage(t, 80, 40)))
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.ContentType)
	require.True(t, strings.HasPrefix(res.URL, "/files/listings/7/"), res.URL)

	saved, err := os.Open(filepath.Join(store.BasePath(), strings.TrimPrefix(res.URL, "/files/")))
	require.NoError(t, err)
	defer saved.Close()

	decoded, _, err := image.DecodeConfig(saved)
	require.NoError(t, err)
	assert.Equal(t, 20, decoded.Width)
	assert.Equal(t, 10, decoded.Height)
}

func TestUploadListingImage_ZeroDimensionUsesDefaultBounds(t *testing.T) {
	store, err := storage.NewLocalStorage(config.StorageConfig{BasePath: t.TempDir()})
	require.NoError(t, err)

	cfg := config.DefaultUploadConfig()
	cfg.MaxDimension = 0
	svc := services.NewUploadService(store, cfg)

	res, err := svc.UploadListingImage(context.Background(), 1, fileHeader(t, "small.png", pngImage(t, 30, 12)))
	require.NoError(t, err)

	saved, err := os.Open(filepath.Join(store.BasePath(), strings.TrimPrefix(res.URL, "/files/")))
	require.NoError(t, err)
	defer saved.Close()

	decoded, _, err := image.DecodeConfig(saved)
	require.NoError(t, err)
	assert.Equal(t, 30, decoded.Width)
	assert.Equal(t, 12, decoded.Height)
}
