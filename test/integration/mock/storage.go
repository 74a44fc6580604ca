package mock

import (
	"context"
	"io"
	"sync"

	"github.com/bytebank/backend/internal/application/adapter"
)

// FileStorage is an in-memory blob store standing in for Google Cloud
// Storage in integration tests.
type FileStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewFileStorage creates an empty in-memory file storage.
func NewFileStorage() *FileStorage {
	return &FileStorage{
		objects: make(map[string][]byte),
	}
}

// Upload stores the content under the given path.
func (s *FileStorage) Upload(ctx context.Context, path, contentType string, content io.Reader) (*adapter.StoredFile, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data

	return &adapter.StoredFile{
		Path: path,
		URL:  "https://storage.test/" + path,
	}, nil
}

// Delete removes the object at the given path. Missing objects are ignored.
func (s *FileStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

// Has reports whether an object exists at the given path.
func (s *FileStorage) Has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

// Clear removes all stored objects.
func (s *FileStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[string][]byte)
}
