// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"io"
)

// StoredFile describes an uploaded object in blob storage.
type StoredFile struct {
	Path string
	URL  string
}

// FileStorage defines the interface for receipt blob storage.
type FileStorage interface {
	// Upload writes the content to the given object path and returns the
	// stored file's path and public URL.
	Upload(ctx context.Context, path, contentType string, content io.Reader) (*StoredFile, error)

	// Delete removes the object at the given path. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, path string) error
}
