// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

// Package storage uploads scrubbed captures to S3-compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tomtom215/wigleproc/internal/config"
	"github.com/tomtom215/wigleproc/internal/logging"
)

// ContentType is the MIME type used for uploaded captures.
const ContentType = "text/csv"

// Uploader stores a local file under an object key.
type Uploader interface {
	Upload(ctx context.Context, localPath, key string) error
}

// S3Uploader uploads files to a single bucket.
type S3Uploader struct {
	client *minio.Client
	bucket string
	prefix string
	region string
}

// NewS3Uploader creates a client for cfg. No request is made until
// EnsureBucket or Upload is called.
func NewS3Uploader(cfg config.StorageConfig) (*S3Uploader, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("storage endpoint and bucket are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &S3Uploader{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		region: cfg.Region,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist.
func (s *S3Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	logging.Ctx(ctx).Info().Str("bucket", s.bucket).Msg("Created storage bucket")
	return nil
}

// Upload stores localPath under the configured prefix joined with key.
func (s *S3Uploader) Upload(ctx context.Context, localPath, key string) error {
	objectKey := ObjectKey(s.prefix, key)

	info, err := s.client.FPutObject(ctx, s.bucket, objectKey, localPath, minio.PutObjectOptions{
		ContentType: ContentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s to %s/%s: %w", localPath, s.bucket, objectKey, err)
	}

	logging.Ctx(ctx).Debug().
		Str("bucket", s.bucket).
		Str("key", objectKey).
		Int64("size", info.Size).
		Msg("Uploaded scrubbed capture")
	return nil
}

// ObjectKey builds a slash-separated key from prefix and a local relative
// path. Leading "./", "../" and absolute roots are removed so keys never
// escape the prefix.
func ObjectKey(prefix, name string) string {
	name = filepath.ToSlash(name)
	name = path.Clean("/" + name)
	name = strings.TrimPrefix(name, "/")

	prefix = strings.Trim(filepath.ToSlash(prefix), "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
