package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore abstracts the document bucket so services can be tested
// without a running MinIO.
type ObjectStore interface {
	Put(ctx context.Context, objectKey, contentType string, size int64, content io.Reader) (string, error)
	Remove(ctx context.Context, objectKey string) error
	PublicURL(objectKey string) string
}

type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioStore(endpoint, accessKey, secretKey string, useSSL bool, bucket, publicURL string) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// Put streams the file into the bucket and returns the public URL.
func (m *MinioStore) Put(ctx context.Context, objectKey, contentType string, size int64, content io.Reader) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectKey, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return m.PublicURL(objectKey), nil
}

func (m *MinioStore) Remove(ctx context.Context, objectKey string) error {
	return m.client.RemoveObject(ctx, m.bucket, objectKey, minio.RemoveObjectOptions{})
}

// PublicURL builds the externally reachable URL for an object. The bucket
// is served read only behind the configured public base URL.
func (m *MinioStore) PublicURL(objectKey string) string {
	return m.publicURL + "/" + path.Join(m.bucket, objectKey)
}
