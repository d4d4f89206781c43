package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// baasObjectStorage stores files in BaaS buckets.
type baasObjectStorage struct {
	objects adapter.ObjectStorageAdapter
	logger  *logger.Logger
}

// NewBaaSObjectStorage constructs an [ObjectStorage] over the BaaS storage API.
func NewBaaSObjectStorage(objects adapter.ObjectStorageAdapter, logger *logger.Logger) ObjectStorage {
	return &baasObjectStorage{objects: objects, logger: logger}
}

func (s *baasObjectStorage) Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, opts models.UploadOptions) error {
	if err := s.objects.Upload(ctx, bucket, path, body, contentType, opts); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*baasObjectStorage.Upload").
			Str("bucket", bucket).
			Str("path", path).
			Msg("upload failed")
		return mapBaaSError(err)
	}
	return nil
}

func (s *baasObjectStorage) PublicURL(bucket, path string) string {
	return s.objects.PublicURL(bucket, path)
}

func (s *baasObjectStorage) Remove(ctx context.Context, bucket string, paths []string) error {
	if err := s.objects.Remove(ctx, bucket, paths); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*baasObjectStorage.Remove").
			Str("bucket", bucket).
			Strs("paths", paths).
			Msg("remove failed")
		return mapBaaSError(err)
	}
	return nil
}
