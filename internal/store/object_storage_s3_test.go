package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

type s3Request struct {
	method  string
	path    string
	query   string
	headers http.Header
	body    string
}

func newTestS3(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (ObjectStorage, *[]s3Request) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []s3Request
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, s3Request{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, headers: r.Header.Clone(), body: string(body)})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	storage := NewS3ObjectStorage(config.S3{
		Endpoint:        srv.URL,
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketPrefix:    "tj-",
		PublicURL:       "https://cdn.example.com/",
		UsePathStyle:    true,
	}, logger.Nop())
	return storage, &reqs
}

func TestS3ObjectStorage_Upload(t *testing.T) {
	storage, reqs := newTestS3(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := storage.Upload(context.Background(), models.AvatarBucket, "user-1/user-1-1700000000000.png",
		strings.NewReader("png-bytes"), "image/png", models.UploadOptions{CacheControl: "3600"})
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/tj-avatars/user-1/user-1-1700000000000.png", req.path)
	assert.Equal(t, "image/png", req.headers.Get("Content-Type"))
	assert.Equal(t, "max-age=3600", req.headers.Get("Cache-Control"))
	assert.Equal(t, "*", req.headers.Get("If-None-Match"))
	assert.Contains(t, req.body, "png-bytes")
}

func TestS3ObjectStorage_Upload_UpsertSkipsPrecondition(t *testing.T) {
	storage, reqs := newTestS3(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := storage.Upload(context.Background(), models.TripImageBucket, "trip-entries/t1/a.jpg",
		strings.NewReader("jpg"), "image/jpeg", models.UploadOptions{Upsert: true})
	require.NoError(t, err)
	require.Len(t, *reqs, 1)
	assert.Empty(t, (*reqs)[0].headers.Get("If-None-Match"))
}

func TestS3ObjectStorage_Upload_Exists(t *testing.T) {
	storage, _ := newTestS3(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusPreconditionFailed)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>PreconditionFailed</Code><Message>At least one of the pre-conditions you specified did not hold</Message></Error>`)
	})

	err := storage.Upload(context.Background(), models.AvatarBucket, "a.png", strings.NewReader("x"), "image/png", models.UploadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestS3ObjectStorage_Remove(t *testing.T) {
	storage, reqs := newTestS3(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><DeleteResult></DeleteResult>`)
	})

	err := storage.Remove(context.Background(), models.AvatarBucket, []string{"user-1/old.png"})
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.True(t, strings.HasPrefix(req.path, "/tj-avatars"), req.path)
	assert.Contains(t, req.query, "delete")
	assert.Contains(t, req.body, "<Key>user-1/old.png</Key>")
}

func TestS3ObjectStorage_Remove_Empty(t *testing.T) {
	storage, reqs := newTestS3(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	require.NoError(t, storage.Remove(context.Background(), models.AvatarBucket, nil))
	assert.Empty(t, *reqs)
}

func TestS3ObjectStorage_PublicURL(t *testing.T) {
	storage, _ := newTestS3(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, "https://cdn.example.com/tj-trip-images/trip-entries/t1/my%20photo.jpg",
		storage.PublicURL(models.TripImageBucket, "trip-entries/t1/my photo.jpg"))
}
