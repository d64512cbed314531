// Package storage uploads category and product images to the external
// image host. The storefront only ever persists the resulting URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ImageStore saves uploaded images and returns their public URL.
type ImageStore interface {
	// Upload stores an image under the given name and returns its URL.
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

// s3ImageStore implements ImageStore on AWS S3.
type s3ImageStore struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3ImageStore creates an S3-backed image store.
func NewS3ImageStore(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (ImageStore, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 image store initialised")

	return &s3ImageStore{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload stores an image in the bucket and returns its public URL.
func (s *s3ImageStore) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	key := path.Join(s.prefix, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to upload image")
		return "", fmt.Errorf("failed to upload image (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)

	s.logger.Debug().
		Str("key", key).
		Str("url", url).
		Msg("image uploaded")

	return url, nil
}

// disabledImageStore rejects uploads when no image host is configured.
// Admin clients then supply image URLs directly.
type disabledImageStore struct{}

// NewDisabledImageStore creates an image store that rejects every upload.
func NewDisabledImageStore() ImageStore {
	return disabledImageStore{}
}

func (disabledImageStore) Upload(_ context.Context, name, _ string, _ io.Reader) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("image name is required")
	}
	return "", fmt.Errorf("image uploads are disabled")
}
