package adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-travel-journal/models"
)

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Upload implements [ObjectStorageAdapter].
// POST /storage/v1/object/{bucket}/{path}.
func (h *baasAdapter) Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, opts models.UploadOptions) error {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", strconv.FormatBool(opts.Upsert)).
		SetBody(body)
	if opts.CacheControl != "" {
		req.SetHeader("Cache-Control", "max-age="+opts.CacheControl)
	}

	resp, err := req.Post(fmt.Sprintf("%s/object/%s/%s", storagePath, bucket, escapePath(path)))
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

// PublicURL implements [ObjectStorageAdapter].
func (h *baasAdapter) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s%s/object/public/%s/%s", h.baseURL, storagePath, bucket, escapePath(path))
}

// Remove implements [ObjectStorageAdapter].
// DELETE /storage/v1/object/{bucket} with {"prefixes": [...]}.
func (h *baasAdapter) Remove(ctx context.Context, bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(removeRequest{Prefixes: paths}).
		Delete(fmt.Sprintf("%s/object/%s", storagePath, bucket))
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}

	return mapHTTPError(resp)
}
