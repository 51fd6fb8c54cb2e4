package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"cityinfo/internal/config"
)

const ensureTimeout = 10 * time.Second

// minioBucket implements Bucket on top of minio-go (MinIO, AWS S3, etc.).
type minioBucket struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates an S3-compatible client, checks connectivity and makes sure the
// bucket exists, creating it if missing.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (Bucket, error) {
	cli, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	b := &minioBucket{client: cli, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(ctx, ensureTimeout)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return b, nil
}

func newClient(cfg config.MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return cli, nil
}

func (m *minioBucket) Name() string { return m.bucket }

// Ping issues a HEAD on the bucket.
func (m *minioBucket) Ping(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", m.bucket, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", m.bucket, ErrBucketMissing)
	}
	return nil
}
