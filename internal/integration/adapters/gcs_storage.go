// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/bytebank/backend/config"
	"github.com/bytebank/backend/internal/application/adapter"
)

// gcsStorage implements the adapter.FileStorage interface on Google Cloud
// Storage. Receipts are stored as bucket objects; the public URL assumes
// the bucket serves objects directly.
type gcsStorage struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

// NewGCSStorage creates a new GCS-backed file storage instance. When no
// credentials file is configured, Application Default Credentials are used.
func NewGCSStorage(ctx context.Context, cfg config.StorageConfig) (adapter.FileStorage, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &gcsStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
	}, nil
}

// Upload writes the content to the given object path.
func (s *gcsStorage) Upload(ctx context.Context, path, contentType string, content io.Reader) (*adapter.StoredFile, error) {
	obj := s.client.Bucket(s.bucket).Object(path)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("copy content to object writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize upload: %w", err)
	}

	return &adapter.StoredFile{
		Path: path,
		URL:  fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, path),
	}, nil
}

// Delete removes the object at the given path. A missing object is treated
// as already deleted.
func (s *gcsStorage) Delete(ctx context.Context, path string) error {
	err := s.client.Bucket(s.bucket).Object(path).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
