// Package blob implements the object storage service on top of gocloud.dev buckets.
package blob

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/s3blob"   // s3:// bucket driver

	"metroshelter/config"
	"metroshelter/internal/domain/lifecycle"
	"metroshelter/internal/domain/service"
	"metroshelter/internal/errors"
)

type bucketStore struct {
	bucket *blob.Bucket
}

// NewBucketStore opens the configured bucket and registers its shutdown
// with the application lifecycle.
func NewBucketStore(lc fx.Lifecycle, cfg *config.Config) (service.BlobStore, error) {
	if cfg.Blob == nil || cfg.Blob.BucketURL == "" {
		return nil, errors.New("blob bucket url must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &bucketStore{bucket: bucket}, nil
}

// Store writes data under the given folder and returns the blob reference.
// Filenames are randomized so concurrent uploads of the same original name
// never collide.
func (s *bucketStore) Store(ctx context.Context, data []byte, folder, filename string) (string, error) {
	ext := path.Ext(filename)
	ref := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	if err := s.bucket.WriteAll(ctx, ref, data, nil); err != nil {
		return "", errors.Wrap(err, "write blob")
	}

	return ref, nil
}

// Destroy removes the blob behind ref. Deleting a missing blob is not an
// error so cleanup paths stay idempotent.
func (s *bucketStore) Destroy(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, ref); err != nil {
		if exists, existsErr := s.bucket.Exists(ctx, ref); existsErr == nil && !exists {
			return nil
		}
		return errors.Wrap(err, "delete blob")
	}

	return nil
}
