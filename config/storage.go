package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStore resolves recipe image references. Absolute http(s) URLs pass
// through unchanged; anything else is treated as an object key in the bucket
// and presigned for a limited time.
type ImageStore struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

// NewImageStore initializes the S3 client from the default AWS credential
// chain and the configured region.
func NewImageStore(ctx context.Context, cfg StorageConfig) (*ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewImageStoreFromClient(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.PresignTTL), nil
}

// NewImageStoreFromClient wraps an existing S3 client.
func NewImageStoreFromClient(client *s3.Client, bucket string, ttl time.Duration) *ImageStore {
	return &ImageStore{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		ttl:     ttl,
	}
}

// ImageURL returns a URL the browser can load for ref.
func (s *ImageStore) ImageURL(ctx context.Context, ref string) (string, error) {
	if ref == "" || isAbsoluteURL(ref) {
		return ref, nil
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign image %q: %w", ref, err)
	}
	return req.URL, nil
}

func isAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
