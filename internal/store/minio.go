package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
)

// ImageStore keeps build gallery images in a MinIO bucket, keyed by the
// object name the upload handler generates.
type ImageStore struct {
	client *minio.Client
	bucket string
}

func NewImageStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &ImageStore{client: client, bucket: bucket}, nil
}

// Upload stores image bytes under the given object key.
func (s *ImageStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload image: %w", err)
	}
	return nil
}

// Download retrieves the image bytes and content type for a key.
func (s *ImageStore) Download(ctx context.Context, key string) ([]byte, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("get image: %w", err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, "", apperror.NotFound("image")
		}
		return nil, "", fmt.Errorf("stat image: %w", err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	return data, info.ContentType, nil
}
