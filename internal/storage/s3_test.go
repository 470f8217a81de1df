package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"realty_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBucket - минимальный S3-совместимый сервер для path-style запросов
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string]string
	acl     map[string]string
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := r.URL.Path
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[key] = string(body)
		b.acl[key] = r.Header.Get("X-Amz-Acl")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if _, ok := b.objects[key]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(b.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3Storage_AgainstCompatibleEndpoint(t *testing.T) {
	bucket := &fakeBucket{objects: map[string]string{}, acl: map[string]string{}}
	srv := httptest.NewServer(bucket)
	t.Cleanup(srv.Close)

	s, err := NewStorage(config.StorageConfig{
		Type:       TypeS3,
		Bucket:     "photos",
		Region:     "eu-central-1",
		AccessKey:  "AKIATEST",
		SecretKey:  "secret",
		Endpoint:   srv.URL,
		BaseURL:    "https://photos.example.com/",
		PublicRead: true,
	})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "listings/1/a.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg"))
	assert.Equal(t, "jpeg-bytes", bucket.objects["/photos/listings/1/a.jpg"])
	assert.Equal(t, "public-read", bucket.acl["/photos/listings/1/a.jpg"])

	exists, err := s.Exists(ctx, "listings/1/a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(ctx, "listings/1/missing.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Delete(ctx, "listings/1/a.jpg"))
	assert.Empty(t, bucket.objects)

	url, err := s.GetURL(ctx, "listings/1/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://photos.example.com/listings/1/a.jpg", url)
}

func TestS3Storage_Configuration(t *testing.T) {
	_, err := NewStorage(config.StorageConfig{Type: TypeS3})
	assert.ErrorContains(t, err, "bucket is required")

	_, err = NewStorage(config.StorageConfig{Type: TypeCloudflareR2, Bucket: "b"})
	assert.ErrorContains(t, err, "endpoint is required")

	s, err := NewS3Storage(config.StorageConfig{Bucket: "photos"})
	require.NoError(t, err)
	url, err := s.GetURL(context.Background(), "/x.png")
	require.NoError(t, err)
	assert.Equal(t, "https://photos.s3.us-east-1.amazonaws.com/x.png", url)

	r2, err := NewCloudflareR2Storage(config.StorageConfig{Bucket: "photos", Endpoint: "https://acc.r2.cloudflarestorage.com"})
	require.NoError(t, err)
	url, err = r2.GetURL(context.Background(), "x.png")
	require.NoError(t, err)
	assert.Equal(t, "https://photos.r2.dev/x.png", url)
}
