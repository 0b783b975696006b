package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/swipeai/deskassist/internal/config"
)

// Client wraps the object-store connection shared by all components.
type Client struct {
	s3 *minio.Client
}

// New creates an object-store client from the supplied configuration.
// It centralizes client creation for all services.
func New(cfg config.StoreConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("store endpoint must be provided")
	}

	s3, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object-store client: %w", err)
	}

	return &Client{s3: s3}, nil
}

// HasObject reports whether an object with exactly the given key exists
// in the bucket. The listing is prefix-filtered and then scanned for an
// exact key match.
func (c *Client) HasObject(ctx context.Context, bucket, key string) (bool, error) {
	objects := c.s3.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: key})
	for obj := range objects {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list objects in %s: %w", bucket, obj.Err)
		}
		if obj.Key == key {
			return true, nil
		}
	}
	return false, nil
}

// UploadFile uploads a local file under the given key.
func (c *Client) UploadFile(ctx context.Context, bucket, key, path string) error {
	_, err := c.s3.FPutObject(ctx, bucket, key, path, minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to upload %s to %s: %w", path, bucket, err)
	}
	return nil
}

// PutBytes writes an explicit byte payload under the given key.
func (c *Client) PutBytes(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := c.s3.PutObject(ctx, bucket, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to put object %s in %s: %w", key, bucket, err)
	}
	return nil
}
