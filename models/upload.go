package models

import (
	"io"
	"path"
	"strings"
)

// Storage buckets used by the journal.
const (
	AvatarBucket    = "avatars"
	TripImageBucket = "trip-images"
)

// MaxImageSize is the upper bound for any uploaded image (5 MiB).
const MaxImageSize = 5 * 1024 * 1024

// ImageFile is an uploaded file as received from a form.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Ext returns the extension of the original file name without the dot.
// Names without an extension yield the whole name, matching how browsers
// split on the last dot.
func (f ImageFile) Ext() string {
	ext := strings.TrimPrefix(path.Ext(f.Name), ".")
	if ext == "" {
		return f.Name
	}
	return ext
}

// UploadOptions controls object creation.
type UploadOptions struct {
	CacheControl string
	Upsert       bool
}

// UploadResult is the outcome of an avatar upload. It never carries a Go
// error: failures are described by Error for display.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}
