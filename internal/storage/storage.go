package storage

import (
	"context"
	"errors"
)

// ErrBucketMissing is returned by Ping when the configured bucket no longer exists.
var ErrBucketMissing = errors.New("bucket does not exist")

// Bucket is an S3-compatible bucket the service depends on.
// Implementations must be safe for concurrent use.
type Bucket interface {
	// Name returns the bucket name.
	Name() string
	// Ping verifies the backend is reachable and the bucket exists.
	Ping(ctx context.Context) error
}
