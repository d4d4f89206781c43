// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// s3ObjectStorage keeps files in an S3-compatible store (AWS, MinIO, R2).
// Logical buckets map to real buckets named BucketPrefix + bucket.
type s3ObjectStorage struct {
	client       *s3.Client
	bucketPrefix string
	publicURL    string
	logger       *logger.Logger
}

// NewS3ObjectStorage constructs an [ObjectStorage] for cfg.
func NewS3ObjectStorage(cfg config.S3, logger *logger.Logger) ObjectStorage {
	opts := func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}

	logger.Info().
		Str("func", "NewS3ObjectStorage").
		Str("endpoint", cfg.Endpoint).
		Str("bucket_prefix", cfg.BucketPrefix).
		Msg("S3 object storage initialized")

	return &s3ObjectStorage{
		client:       s3.New(s3.Options{}, opts),
		bucketPrefix: cfg.BucketPrefix,
		publicURL:    strings.TrimRight(cfg.PublicURL, "/"),
		logger:       logger,
	}
}

func (s *s3ObjectStorage) bucket(name string) string {
	return s.bucketPrefix + name
}

// Upload stores body. Without opts.Upsert an existing object is kept and the
// upload fails with [ErrConflict].
func (s *s3ObjectStorage) Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, opts models.UploadOptions) error {
	log := logger.FromContext(ctx)

	// the signer needs a seekable body; images are capped well below memory limits
	data, err := io.ReadAll(io.LimitReader(body, models.MaxImageSize+1))
	if err != nil {
		return fmt.Errorf("%w: read upload body: %w", ErrStore, err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket(bucket)),
		Key:           aws.String(path),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if opts.CacheControl != "" {
		input.CacheControl = aws.String("max-age=" + opts.CacheControl)
	}
	if !opts.Upsert {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3ObjectStorage.Upload").Str("bucket", bucket).Str("path", path).Msg("s3 upload failed")
		return mapS3Error(err)
	}
	return nil
}

func (s *s3ObjectStorage) PublicURL(bucket, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicURL + "/" + s.bucket(bucket) + "/" + strings.Join(segments, "/")
}

func (s *s3ObjectStorage) Remove(ctx context.Context, bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(paths))
	for _, p := range paths {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(p)})
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket(bucket)),
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ObjectStorage.Remove").Str("bucket", bucket).Msg("s3 delete failed")
		return mapS3Error(err)
	}
	if len(out.Errors) > 0 {
		first := out.Errors[0]
		return fmt.Errorf("%w: delete %s: %s", ErrStore, aws.ToString(first.Key), aws.ToString(first.Message))
	}
	return nil
}

func mapS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return fmt.Errorf("%w: %w", ErrConflict, err)
		case "NoSuchBucket", "NoSuchKey":
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
